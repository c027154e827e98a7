// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Map runs fn over items with at most workerCount concurrent calls and returns the results of
// successful calls in input order. A failed item is reported to onError and skipped; it does not
// stop the other workers. Map returns the context error if ctx ends before all items ran.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
	onError func(T, error),
) ([]R, error) {
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	results := make([]R, len(items))
	ok := make([]bool, len(items))

	tasks := make(chan int, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, open := <-tasks:
					if !open {
						return
					}
					res, err := fn(ctx, items[idx])
					if err != nil {
						if onError != nil {
							onError(items[idx], err)
						}
						continue
					}
					results[idx] = res
					ok[idx] = true
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for idx := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- idx:
			}
		}
	}()

	wg.Wait()

	out := make([]R, 0, len(items))
	for idx := range items {
		if ok[idx] {
			out = append(out, results[idx])
		}
	}

	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, nil
}
