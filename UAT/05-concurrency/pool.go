package concurrency

import (
	"sync"

	"github.com/toejough/eventmon"
)

// Pool demonstrates events raised from many goroutines at once.
type Pool struct {
	Done eventmon.Event[func(sender any, job int)]
}

// Run processes jobs 0..count-1 on workers goroutines and raises Done for each.
func (p *Pool) Run(count, workers int) {
	jobs := make(chan int)

	var wg sync.WaitGroup

	for range workers {
		wg.Go(func() {
			for job := range jobs {
				for _, handler := range p.Done.Handlers() {
					handler(p, job)
				}
			}
		})
	}

	for job := range count {
		jobs <- job
	}

	close(jobs)
	wg.Wait()
}
