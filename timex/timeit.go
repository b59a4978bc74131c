package timex

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Timeit starts a wall-clock timer and returns the closure that stops
// it, logging "<name> took <elapsed>" through the logger. Built for
// defer:
//
//	defer timex.Timeit(nil, "regrid")()
//
// A nil logger reports through the apex/log default; DiscardLogger
// silences the line.
func Timeit(logger Logger, name string) func() {
	logger = ValidLoggerOrDefault(logger)
	start := time.Now()
	return func() {
		logger.Infof("%s took %s", name, HumanDuration(time.Since(start)))
	}
}

// Run executes fn with a deadline of timeout layered onto ctx. The
// context handed to fn is cancelled when the budget elapses; a
// well-behaved fn returns promptly after that. Run itself returns as
// soon as the deadline passes, with ErrTimeout.
func Run(ctx context.Context, timeout time.Duration, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- fn(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s", ErrTimeout, timeout)
		}
		return ctx.Err()
	}
}
