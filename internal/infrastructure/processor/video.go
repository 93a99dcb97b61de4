package processor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// VideoProcessor wraps the external ffmpeg/ffprobe binaries. Every invocation
// runs under a bounded context so a stalled encoder cannot hang the request.
type VideoProcessor struct {
	Timeout    time.Duration
	ThumbnailW int
	ThumbnailH int
}

func NewVideoProcessor(timeout time.Duration, thumbW, thumbH int) *VideoProcessor {
	return &VideoProcessor{Timeout: timeout, ThumbnailW: thumbW, ThumbnailH: thumbH}
}

// ProbeDuration reads the container-level duration in seconds via ffprobe.
func (p *VideoProcessor) ProbeDuration(ctx context.Context, sourcePath string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		sourcePath,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe çalıştırılamadı: %w", err)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe çıktısı çözümlenemedi: %w", err)
	}
	return seconds, nil
}

// ExtractThumbnail captures a single frame at atSeconds, scaled to the
// configured size, and writes it as a uniquely named JPEG under outDir.
func (p *VideoProcessor) ExtractThumbnail(ctx context.Context, sourcePath, outDir string, atSeconds float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}
	outputPath := filepath.Join(outDir, uuid.NewString()+".jpg")

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-ss", fmt.Sprintf("%.2f", atSeconds),
		"-i", sourcePath,
		"-vframes", "1",
		"-vf", fmt.Sprintf("scale=%d:%d", p.ThumbnailW, p.ThumbnailH),
		"-y",
		outputPath,
	)
	if err := cmd.Run(); err != nil {
		os.Remove(outputPath)
		return "", fmt.Errorf("ffmpeg thumbnail üretemedi: %w", err)
	}

	// ffmpeg bazen hata vermeden boş çıktı bırakıyor
	if info, err := os.Stat(outputPath); err != nil || info.Size() == 0 {
		os.Remove(outputPath)
		return "", fmt.Errorf("thumbnail çıktısı boş: %s", sourcePath)
	}

	return outputPath, nil
}

// ProcessResult carries whatever the probing produced; both steps are best
// effort and either field may be the zero value.
type ProcessResult struct {
	ThumbnailPath string
	Seconds       float64
}

// Process probes the duration first (the midpoint capture needs it), then
// extracts the representative frame at 50%. Each step carries its own
// timeout; a failure in one does not abort the other.
func (p *VideoProcessor) Process(ctx context.Context, sourcePath, thumbDir string) (ProcessResult, error) {
	var result ProcessResult
	var firstErr error

	seconds, err := p.ProbeDuration(ctx, sourcePath)
	if err != nil {
		firstErr = err
	} else {
		result.Seconds = seconds
	}

	thumbPath, err := p.ExtractThumbnail(ctx, sourcePath, thumbDir, result.Seconds/2)
	if err != nil {
		if firstErr == nil {
			firstErr = err
		}
	} else {
		result.ThumbnailPath = thumbPath
	}

	return result, firstErr
}
