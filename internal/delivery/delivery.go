// Package delivery defines the inbound transport contract.
package delivery

import "context"

// Delivery is a transport serving the application, typically an HTTP server.
type Delivery interface {
	// Serve blocks serving requests until the transport is shut down.
	Serve(ctx context.Context) error
}
