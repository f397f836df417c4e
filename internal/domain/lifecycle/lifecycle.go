// Package lifecycle holds shared constants for component start/stop.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a delivery or store.
const DefaultTimeout = 10 * time.Second
