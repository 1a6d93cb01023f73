// Package lifecycle holds timing constants shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and stores.
const DefaultTimeout = 10 * time.Second
