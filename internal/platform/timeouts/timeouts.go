// Package timeouts defines the HTTP timeouts used by the admin process.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Idle caps how long keep-alive connections stay open between requests.
const Idle = 60 * time.Second
