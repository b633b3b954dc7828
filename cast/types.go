// Package cast defines the record, movie and pair types read from
// tab-separated cast files, plus the sentinel errors of the loader.
package cast

import "errors"

// Sentinel errors for the cast package.
var (
	// ErrRead indicates the input stream failed before reaching EOF.
	ErrRead = errors.New("cast: failed to read input")

	// ErrNilReader indicates a nil io.Reader was passed to a reader function.
	ErrNilReader = errors.New("cast: reader is nil")
)

const (
	// recordFields is the field count of a cast row: actor, title, year.
	recordFields = 3

	// pairFields is the field count of a query row: source, destination.
	pairFields = 2
)

// Record is one credit row: Actor appeared in Title released in Year.
type Record struct {
	Actor string
	Title string
	Year  int
}

// Pair is one query row.
type Pair struct {
	Src string
	Dst string
}

// Movie groups every credit of one (Year, Title) key. Cast keeps file order
// and may contain the same actor more than once.
type Movie struct {
	Title string
	Year  int
	Cast  []string
}

// Bucket is the set of movies sharing one release year, ordered by title.
type Bucket struct {
	Year   int
	Movies []Movie
}

// NodeSink receives every distinct actor name seen by Load.
// InsertNode must be idempotent; both core.Graph and uptree.Forest qualify.
type NodeSink interface {
	InsertNode(name string) bool
}
