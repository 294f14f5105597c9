// Package worker runs independent jobs on a fixed number of goroutines.
package worker

import "sync"

type Job[T any] func() T

type Result[T any] struct {
	JobID  int
	Output T
}

type Pool[T any] struct {
	jobs    chan jobWrapper[T]
	results chan Result[T]
	wg      sync.WaitGroup
}

type jobWrapper[T any] struct {
	id int
	fn Job[T]
}

// NewPool starts workerCount workers. bufferSize bounds both queues; Submit
// blocks once it is full and nobody reads Results.
func NewPool[T any](workerCount int, bufferSize int) *Pool[T] {
	workerCount = max(workerCount, 1)
	p := &Pool[T]{
		jobs:    make(chan jobWrapper[T], bufferSize),
		results: make(chan Result[T], bufferSize),
	}

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}
	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	return p
}

func (p *Pool[T]) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.results <- Result[T]{
			JobID:  job.id,
			Output: job.fn(),
		}
	}
}

func (p *Pool[T]) Submit(id int, fn Job[T]) {
	p.jobs <- jobWrapper[T]{id: id, fn: fn}
}

// Close stops accepting jobs. Results is closed once the queued jobs finish.
func (p *Pool[T]) Close() {
	close(p.jobs)
}

func (p *Pool[T]) Results() <-chan Result[T] {
	return p.results
}

// Map runs fn over every input on workerCount goroutines and returns the
// outputs in input order.
func Map[In, Out any](workerCount int, inputs []In, fn func(In) Out) []Out {
	out := make([]Out, len(inputs))
	if len(inputs) == 0 {
		return out
	}

	p := NewPool[Out](workerCount, len(inputs))
	for i, in := range inputs {
		p.Submit(i, func() Out { return fn(in) })
	}
	p.Close()

	for r := range p.Results() {
		out[r.JobID] = r.Output
	}
	return out
}
