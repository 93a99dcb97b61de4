package queue

import (
	"context"
	"log"
	"sync"
)

type Worker struct {
	ID      int        // worker id
	JobChan <-chan Job // iş kuyruğu
	Wg      *sync.WaitGroup
	Handler JobHandler
}

func (w *Worker) Start(ctx context.Context) {
	go func() {
		defer w.Wg.Done()
		for {
			select {
			case job, ok := <-w.JobChan:
				if !ok {
					log.Printf("Worker %d: Job channel closed", w.ID)
					return
				}
				select {
				case <-ctx.Done():
					log.Printf("Worker %d: job for video %d cancelled", w.ID, job.VideoID)
					continue
				default:
					w.process(job)
				}
			case <-ctx.Done():
				log.Printf("Worker %d: Stopping due to context cancellation", w.ID)
				return
			}
		}
	}()
}

func (w *Worker) process(job Job) {
	switch job.Type {
	case JobBackfillMedia:
		if err := w.Handler.BackfillMedia(job.VideoID); err != nil {
			log.Printf("Worker %d: backfill for video %d failed: %v", w.ID, job.VideoID, err)
		}
	default:
		log.Printf("Worker %d: unknown job type %q", w.ID, job.Type)
	}
}
