// Package pathfind defines the path-query modes and weight policy shared by
// the pathfinder command.
package pathfind

import (
	"errors"
	"fmt"
)

// ErrInvalidMode indicates a weight option other than "u" or "w".
var ErrInvalidMode = errors.New("pathfind: invalid weight option (u or w only)")

// DefaultBaseYear is the year a weighted edge costs 1 in.
const DefaultBaseYear = 2015

// Header is the first line of a trails file.
const Header = "(actor)--[movie#@year]-->(actor)--..."

// Mode selects the search used for a path query.
type Mode int

const (
	// Unweighted uses BFS; every shared movie costs 1.
	Unweighted Mode = iota
	// Weighted uses Dijkstra with recency weights.
	Weighted
)

// String returns the command-line spelling of m.
func (m Mode) String() string {
	switch m {
	case Unweighted:
		return "u"
	case Weighted:
		return "w"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "u" and "w" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "u":
		return Unweighted, nil
	case "w":
		return Weighted, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Weight returns the edge cost of a movie released in year.
// Unweighted edges cost 1. Weighted edges cost 1 + (base − year), never
// less than 1, so movies after the base year are as cheap as the base year.
func Weight(m Mode, year, base int) int64 {
	if m != Weighted {
		return 1
	}
	w := int64(1) + int64(base) - int64(year)
	if w < 1 {
		return 1
	}

	return w
}
