package usecases

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"video-platform/internal/domain/repositories"
	"video-platform/internal/infrastructure/queue"
)

const backfillBatchSize = 20

// MaintenanceService runs the periodic jobs: retrying failed media probing
// and sweeping files nothing references anymore.
type MaintenanceService interface {
	ScanMissingMedia()
	SweepOrphans(maxAge time.Duration) error
}

type maintenanceService struct {
	videoRepo repositories.VideoRepository
	pool      *queue.WorkerPool
	mediaDirs []string
}

func NewMaintenanceService(videoRepo repositories.VideoRepository, pool *queue.WorkerPool, mediaDirs []string) MaintenanceService {
	return &maintenanceService{videoRepo: videoRepo, pool: pool, mediaDirs: mediaDirs}
}

func (s *maintenanceService) ScanMissingMedia() {
	videos, err := s.videoRepo.MissingMedia(backfillBatchSize)
	if err != nil {
		log.Printf("Backfill taraması başarısız: %v", err)
		return
	}
	for _, v := range videos {
		if !s.pool.AddJob(queue.Job{Type: queue.JobBackfillMedia, VideoID: v.ID}) {
			// kuyruk dolu; kalanlar bir sonraki taramada
			return
		}
	}
}

// SweepOrphans removes files on disk that no video row references. Only
// meaningful for the local storage driver.
func (s *maintenanceService) SweepOrphans(maxAge time.Duration) error {
	referenced, err := s.videoRepo.AllFileURLs()
	if err != nil {
		return err
	}

	now := time.Now()
	for _, dir := range s.mediaDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if now.Sub(info.ModTime()) < maxAge {
				continue
			}
			publicPath := "/uploads/" + filepath.Base(dir) + "/" + entry.Name()
			if _, ok := referenced[publicPath]; ok {
				continue
			}
			fullPath := filepath.Join(dir, entry.Name())
			if err := os.Remove(fullPath); err != nil {
				log.Printf("Sahipsiz dosya silinemedi %s: %v", fullPath, err)
			} else {
				log.Printf("Removed orphaned media file: %s", fullPath)
			}
		}
	}
	return nil
}
