// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running server started by the application lifecycle.
// Serve blocks until the server stops; shutdown is driven by fx hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
