// worker/pool.go
package worker

import (
	"context"
	"sync"
)

type Job[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	JobID  string
	Output T
	Err    error
}

// Pool runs jobs on a fixed number of goroutines. Each submitted job gets
// its own result channel, so concurrent callers never see each other's
// results.
type Pool[T any] struct {
	jobs chan jobWrapper[T]
	wg   sync.WaitGroup
	once sync.Once
}

type jobWrapper[T any] struct {
	ctx context.Context
	id  string
	fn  Job[T]
	out chan<- Result[T]
}

func NewPool[T any](workerCount int, bufferSize int) *Pool[T] {
	if workerCount < 1 {
		workerCount = 1
	}
	p := &Pool[T]{
		jobs: make(chan jobWrapper[T], bufferSize),
	}

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool[T]) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		if err := job.ctx.Err(); err != nil {
			job.out <- Result[T]{JobID: job.id, Err: err}
			continue
		}
		output, err := job.fn(job.ctx)
		job.out <- Result[T]{
			JobID:  job.id,
			Output: output,
			Err:    err,
		}
	}
}

// Submit queues fn and returns the channel its single result is sent on.
// If ctx ends before the job is queued, the result carries ctx's error.
func (p *Pool[T]) Submit(ctx context.Context, id string, fn Job[T]) <-chan Result[T] {
	out := make(chan Result[T], 1)
	select {
	case p.jobs <- jobWrapper[T]{ctx: ctx, id: id, fn: fn, out: out}:
	case <-ctx.Done():
		out <- Result[T]{JobID: id, Err: ctx.Err()}
	}
	return out
}

// Close stops accepting jobs and waits for queued jobs to finish.
// Submit must not be called after Close.
func (p *Pool[T]) Close() {
	p.once.Do(func() {
		close(p.jobs)
		p.wg.Wait()
	})
}
