// Package workers manages the client's background workers: the periodic
// full-sync loop and any future maintenance jobs. Workers are aggregated so
// the application can start and stop them as one unit.
package workers

// Worker is implemented by any background worker. Run starts the worker's
// execution; implementations either block for the duration of their work or
// spawn goroutines internally.
type Worker interface {
	Run()
}
