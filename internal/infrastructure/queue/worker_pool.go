package queue

import (
	"context"
	"sync"
)

type WorkerPool struct {
	JobChan chan Job
	wg      sync.WaitGroup
	ctx     context.Context    //graceful shutdown için
	cancel  context.CancelFunc //graceful shutdown için
}

func NewWorkerPool(workerCount int, handler JobHandler) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		JobChan: make(chan Job, 100),
		ctx:     ctx,
		cancel:  cancel,
	}
	for i := 0; i < workerCount; i++ {
		worker := &Worker{
			ID:      i,
			JobChan: pool.JobChan,
			Wg:      &pool.wg,
			Handler: handler,
		}
		pool.wg.Add(1)
		worker.Start(pool.ctx)
	}
	return pool
}

// AddJob drops the job when the queue is saturated; the next backfill scan
// will pick the row up again.
func (p *WorkerPool) AddJob(job Job) bool {
	select {
	case p.JobChan <- job:
		return true
	default:
		return false
	}
}

// Shutdown stops the workers via context cancellation. The channel is never
// closed: a producer racing shutdown then gets a dropped job instead of a
// send-on-closed-channel panic.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}
