// Package connect defines the back-end contract and result types of the
// temporal batch connectivity pass.
package connect

import (
	"errors"

	"github.com/katalvlaran/costar/cast"
)

// ErrUnknownAlgorithm indicates an algorithm name other than "bfs" or "ufind".
var ErrUnknownAlgorithm = errors.New("connect: invalid algorithm option (bfs or ufind only)")

// Sentinel is the year reported for pairs that never become connected.
const Sentinel = 9999

// Algorithm names accepted by NewBackend.
const (
	AlgBFS   = "bfs"
	AlgUFind = "ufind"
)

// Backend realizes relation insertion and connectivity checks.
//
// Reset must return the back end to "every actor isolated" while keeping the
// actor set. Connect adds the relations of one movie's cast. Connected must
// report false when either actor is unknown.
type Backend interface {
	Name() string
	Reset()
	Connect(m cast.Movie)
	Connected(src, dst string) bool
}

// Result is the answer for one query pair.
type Result struct {
	Src  string
	Dst  string
	Year int
}

// Stats summarizes one Run.
type Stats struct {
	Backend    string
	Movies     int
	Buckets    int
	Checks     int
	Resolved   int
	Unresolved int
}
