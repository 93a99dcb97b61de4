package processor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// NormalizeThumbnail fits a user-supplied thumbnail override into the same
// 640x360 JPEG frame the generated thumbnails use.
func NormalizeThumbnail(inputPath, outDir string, width, height int) (string, error) {
	img, err := imaging.Open(inputPath)
	if err != nil {
		return "", fmt.Errorf("resim açılamadı: %w", err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}

	resized := imaging.Fit(img, width, height, imaging.Lanczos)
	outputPath := filepath.Join(outDir, uuid.NewString()+".jpg")

	if err := imaging.Save(resized, outputPath, imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("resim kaydedilemedi: %w", err)
	}
	return outputPath, nil
}
