// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and shutting down multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their goroutines internally and
// return. Shutdown stops the worker and blocks until its goroutines have
// exited.
type Worker interface {
	Run(ctx context.Context)
	Shutdown()
}
