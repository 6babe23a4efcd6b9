// Package besteffort wraps non-critical side effects: event-log appends and
// notification sends must never fail the operation that triggered them.
package besteffort

import "log"

// Run executes fn, logs any failure and returns control to the caller.
// It never panics the caller and never propagates the error.
func Run(op string, fn func() error) {
	if err := fn(); err != nil {
		log.Printf("best_effort_failed op=%s error=%q", op, err)
	}
}
