// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of components.
const DefaultTimeout = 10 * time.Second
