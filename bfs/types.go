// Package bfs provides tunable options and error definitions
// for breadth‐first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/costar/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = fmt.Errorf("bfs: %w", core.ErrGraphNil)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. a nil tree), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Tree, if set, is reset and reused instead of allocating a new one.
	// Batch callers that run BFS once per query pair use it to avoid
	// per-call allocations.
	Tree *core.Tree

	// OnVisit is called when a node is dequeued, with its depth from the
	// source. The source itself is visited at depth 0.
	OnVisit func(id core.NodeID, depth int64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a fresh tree per call and a no-op
// visit hook.
func DefaultOptions() Options {
	return Options{
		Tree:    nil,
		OnVisit: func(core.NodeID, int64) {},
	}
}

// WithTree reuses t as the search state. t is Reset at the start of the run.
func WithTree(t *core.Tree) Option {
	return func(o *Options) {
		if t == nil {
			o.err = fmt.Errorf("%w: tree must not be nil", ErrOptionViolation)
			return
		}
		o.Tree = t
	}
}

// WithOnVisit registers a callback to run when a node is visited.
func WithOnVisit(fn func(id core.NodeID, depth int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
