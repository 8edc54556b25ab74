// Package delivery defines the contract for transport servers.
package delivery

import "context"

// Delivery is a long-running transport (e.g. the HTTP server) started by the
// composition root. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
