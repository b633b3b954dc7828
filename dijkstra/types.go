// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted actor graphs.
//
// Options:
//
//	– WithTree: reuse a caller-owned core.Tree as search state.
//
// Errors (sentinel):
//
//	– ErrGraphNil        if the provided graph pointer is nil.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrOptionViolation if an invalid Option is supplied.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/costar/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Dijkstra.
	ErrGraphNil = fmt.Errorf("dijkstra: %w", core.ErrGraphNil)

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	// Tree, if non-nil, is reset and reused as the search state.
	Tree *core.Tree

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithTree reuses t as the search state; t is Reset on entry.
func WithTree(t *core.Tree) Option {
	return func(o *Options) {
		if t == nil {
			o.err = fmt.Errorf("%w: tree must not be nil", ErrOptionViolation)
			return
		}
		o.Tree = t
	}
}

// DefaultOptions returns Options that allocate a fresh tree per call.
func DefaultOptions() Options {
	return Options{Tree: nil}
}
