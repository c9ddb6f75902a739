// Package lifecycle holds shared constants for component start/stop
// coordination.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup health checks.
const DefaultTimeout = 30 * time.Second
