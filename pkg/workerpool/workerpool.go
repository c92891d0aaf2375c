// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

type task[T any] struct {
	index int
	item  T
}

// Process runs a worker pool over the provided work items, invoking process for
// each with the item's index. If process returns an error, the pool cancels the
// context, stops further work and returns the first error.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(ctx context.Context, index int, item T) error,
) error {
	if len(items) == 0 {
		return ctx.Err()
	}
	workerCount = min(max(workerCount, 1), len(items))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan task[T], workerCount)
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for range workerCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, t.index, t.item); err != nil {
						once.Do(func() { firstErr = err })
						cancel()
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for i, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- task[T]{index: i, item: item}:
			}
		}
	}()

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// Map applies fn to every item concurrently and returns the results in input
// order.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	results := make([]R, len(items))
	err := Process(ctx, workerCount, items, func(ctx context.Context, i int, item T) error {
		r, err := fn(ctx, item)
		if err != nil {
			return err
		}
		results[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
