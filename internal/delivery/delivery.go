// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a runnable transport endpoint (HTTP portal, worker server).
// Serve blocks until the server stops; shutdown is driven by the lifecycle
// hooks registered at construction.
type Delivery interface {
	Serve(ctx context.Context) error
}
