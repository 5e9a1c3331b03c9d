package usecase

import "context"

// Sweeper periodically evicts expired pairing requests and notifies their
// requesters. Run blocks until the context is cancelled; Sweep performs a
// single pass for schedulers and tests that drive ticks themselves.
type Sweeper interface {
	Run(ctx context.Context)
	Sweep(ctx context.Context) int
}
