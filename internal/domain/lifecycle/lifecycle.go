// Package lifecycle defines shared constants for application lifecycle management.
package lifecycle

import "time"

// DefaultTimeout is the default timeout for graceful shutdown of deliveries
// and other lifecycle hooks.
const DefaultTimeout = 30 * time.Second
