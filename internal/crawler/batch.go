package crawler

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// ScrapeBatch scrapes every model with a bounded pool of workers. When limiter
// is non-nil each fetch waits for a token first. handler is called from the
// worker goroutines and must be safe for concurrent use. Cancelling ctx stops
// new fetches; models not yet started are reported with ctx.Err().
func (s *Scraper) ScrapeBatch(ctx context.Context, models []string, workers int, limiter *rate.Limiter, handler func(Outcome)) {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan string)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range jobs {
				if limiter != nil {
					if err := limiter.Wait(ctx); err != nil {
						handler(Outcome{Model: m, Err: err})
						continue
					}
				}
				if err := ctx.Err(); err != nil {
					handler(Outcome{Model: m, Err: err})
					continue
				}
				handler(s.Scrape(ctx, m))
			}
		}()
	}

	for _, m := range models {
		jobs <- m
	}
	close(jobs)
	wg.Wait()
}
