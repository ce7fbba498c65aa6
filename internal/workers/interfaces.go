// Package workers runs the background jobs of the client: periodic
// maintenance that must not block PIN entry or encryption calls.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers together.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block; the job runs until ctx is cancelled or Stop is
// called. Stop blocks until the job has fully exited and is a no-op for a
// job that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// GarbageCollector is a store that can reclaim space on demand, such as the
// on-disk device key cache.
type GarbageCollector interface {
	RunGC() error
}
