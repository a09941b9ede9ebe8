// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers, database connections and
// the reminder scheduler.
const DefaultTimeout = 10 * time.Second
