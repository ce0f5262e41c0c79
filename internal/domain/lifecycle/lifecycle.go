// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start/stop operations such as the initial
// database ping and HTTP server shutdown.
const DefaultTimeout = 10 * time.Second
