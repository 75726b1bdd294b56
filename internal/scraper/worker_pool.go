package scraper

import (
	"context"
	"sync"
	"time"
)

// Task refreshes one opportunity source.
type Task func(ctx context.Context) error

type Result struct {
	Err error
}

// WorkerPool runs source-refresh tasks concurrently with an optional
// shared rate limit. Configure the rate before calling Run; the ticker
// is stopped once every worker has drained.
type WorkerPool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
	ticker  *time.Ticker
}

func NewWorkerPool(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

// SetRateLimit caps task starts at rps per second across all workers.
// Must be called before Run.
func (p *WorkerPool) SetRateLimit(rps int) {
	if p == nil || rps <= 0 {
		return
	}
	if p.ticker != nil {
		p.ticker.Stop()
	}
	p.ticker = time.NewTicker(time.Second / time.Duration(rps))
}

func (p *WorkerPool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

// Close signals that no more tasks will be submitted. Workers finish
// the queued tasks and the Run channel closes after the last result.
func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	out := make(chan Result, p.workers)
	if p == nil {
		close(out)
		return out
	}

	var rate <-chan time.Time
	if p.ticker != nil {
		rate = p.ticker.C
	}

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					if t == nil {
						continue
					}
					if rate != nil {
						select {
						case <-ctx.Done():
							return
						case <-rate:
						}
					}
					err := t(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		if p.ticker != nil {
			p.ticker.Stop()
		}
		close(out)
	}()

	return out
}
