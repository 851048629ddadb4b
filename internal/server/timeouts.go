package server

import "time"

const (
	readTimeout = 10 * time.Second
	// The schedule endpoint aggregates four upstream feeds live, so writes
	// get more headroom than reads.
	writeTimeout = 60 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
