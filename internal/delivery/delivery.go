// Package delivery defines the contract shared by all inbound adapters,
// such as the HTTP server and the cron runner.
package delivery

import "context"

// Delivery is a long-running inbound adapter. Serve blocks until the
// delivery stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
