package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps media under BasePath and serves it from /uploads/...
type LocalStorage struct {
	BasePath string
}

func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{BasePath: basePath}
}

func (l *LocalStorage) Save(file multipart.File, folder, filename string) (string, error) {
	fullPath := filepath.Join(l.BasePath, folder, filename)

	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return "", fmt.Errorf("klasör oluşturulamadı: %w", err)
	}

	outFile, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("dosya oluşturulamadı: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, file); err != nil {
		return "", fmt.Errorf("dosya yazılamadı: %w", err)
	}

	return publicPath(folder, filename), nil
}

// SavePath moves an already-written local file (ffmpeg output) into place.
func (l *LocalStorage) SavePath(localPath, folder, filename string) (string, error) {
	fullPath := filepath.Join(l.BasePath, folder, filename)
	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return "", fmt.Errorf("klasör oluşturulamadı: %w", err)
	}
	if err := os.Rename(localPath, fullPath); err != nil {
		// rename cihazlar arası çalışmayabilir, kopyalamayı dene
		src, openErr := os.Open(localPath)
		if openErr != nil {
			return "", openErr
		}
		defer src.Close()
		dst, createErr := os.Create(fullPath)
		if createErr != nil {
			return "", createErr
		}
		defer dst.Close()
		if _, copyErr := io.Copy(dst, src); copyErr != nil {
			return "", copyErr
		}
		os.Remove(localPath)
	}
	return publicPath(folder, filename), nil
}

func (l *LocalStorage) Remove(publicPath string) error {
	local, ok := l.localPath(publicPath)
	if !ok {
		return nil
	}
	return os.Remove(local)
}

func (l *LocalStorage) Exists(publicPath string) bool {
	local, ok := l.localPath(publicPath)
	if !ok {
		return false
	}
	_, err := os.Stat(local)
	return err == nil
}

// Materialize: dosya zaten lokal, kopyalamaya gerek yok.
func (l *LocalStorage) Materialize(publicPath string) (string, func(), error) {
	local, ok := l.localPath(publicPath)
	if !ok {
		return "", nil, fmt.Errorf("beklenmeyen medya yolu: %s", publicPath)
	}
	return local, func() {}, nil
}

func (l *LocalStorage) localPath(public string) (string, bool) {
	rel, ok := strings.CutPrefix(public, "/uploads/")
	if !ok {
		return "", false
	}
	return filepath.Join(l.BasePath, filepath.FromSlash(rel)), true
}

func publicPath(folder, filename string) string {
	return "/uploads/" + folder + "/" + filename
}
