// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server) started by main
// and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
