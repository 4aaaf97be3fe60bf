// Package workerpool provides bounded concurrent processing helpers.
package workerpool

import (
	"context"
	"sync"
)

// Process runs process over items with workerCount workers.
// The first error cancels the shared context and is returned; onCancel, when set,
// is invoked by the failing worker.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T, workerCount)
	errs := make(chan error, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, item); err != nil {
						select {
						case errs <- err:
						default:
						}
						if onCancel != nil {
							onCancel()
						}
						cancel()
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- item:
			}
		}
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}
	return ctx.Err()
}

// Result is the outcome of one item processed by Map.
type Result[T, R any] struct {
	Item  T
	Value R
	Err   error
}

// Map runs fn over items with workerCount workers and collects every outcome in
// input order. A failing item does not stop the others.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) []Result[T, R] {
	if workerCount < 1 {
		workerCount = 1
	}
	results := make([]Result[T, R], len(items))
	indexes := make(chan int)

	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				item := items[idx]
				if err := ctx.Err(); err != nil {
					results[idx] = Result[T, R]{Item: item, Err: err}
					continue
				}
				value, err := fn(ctx, item)
				results[idx] = Result[T, R]{Item: item, Value: value, Err: err}
			}
		}()
	}

	for idx := range items {
		indexes <- idx
	}
	close(indexes)
	wg.Wait()

	return results
}
