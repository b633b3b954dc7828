package cast

import "sort"

type movieKey struct {
	year  int
	title string
}

// Index groups credits into movies keyed by (year, title).
//
// Movies are iterated in ascending year, then ascending title. Actors are
// reported in the order they were first credited.
type Index struct {
	movies  map[movieKey]*Movie
	order   []movieKey
	sorted  bool
	actors  []string
	seen    map[string]struct{}
	credits int
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{
		movies: make(map[movieKey]*Movie),
		seen:   make(map[string]struct{}),
		sorted: true,
	}
}

// Add files one credit. The first credit of a (year, title) creates the
// movie; later credits append to its cast.
func (ix *Index) Add(rec Record) {
	k := movieKey{year: rec.Year, title: rec.Title}
	m, ok := ix.movies[k]
	if !ok {
		m = &Movie{Title: rec.Title, Year: rec.Year}
		ix.movies[k] = m
		ix.order = append(ix.order, k)
		ix.sorted = false
	}
	m.Cast = append(m.Cast, rec.Actor)
	ix.credits++

	if _, dup := ix.seen[rec.Actor]; !dup {
		ix.seen[rec.Actor] = struct{}{}
		ix.actors = append(ix.actors, rec.Actor)
	}
}

func (ix *Index) sortKeys() {
	if ix.sorted {
		return
	}
	sort.Slice(ix.order, func(i, j int) bool {
		a, b := ix.order[i], ix.order[j]
		if a.year != b.year {
			return a.year < b.year
		}

		return a.title < b.title
	})
	ix.sorted = true
}

// Movies returns every movie ordered by (year, title). The cast slices are
// shared with the index.
func (ix *Index) Movies() []Movie {
	ix.sortKeys()
	out := make([]Movie, 0, len(ix.order))
	for _, k := range ix.order {
		out = append(out, *ix.movies[k])
	}

	return out
}

// Buckets returns the movies grouped by release year, in ascending year.
func (ix *Index) Buckets() []Bucket {
	var out []Bucket
	for _, m := range ix.Movies() {
		if n := len(out); n > 0 && out[n-1].Year == m.Year {
			out[n-1].Movies = append(out[n-1].Movies, m)
			continue
		}
		out = append(out, Bucket{Year: m.Year, Movies: []Movie{m}})
	}

	return out
}

// Actors returns the distinct actor names in first-credit order.
func (ix *Index) Actors() []string {
	out := make([]string, len(ix.actors))
	copy(out, ix.actors)

	return out
}

// Len returns the number of distinct movies.
func (ix *Index) Len() int { return len(ix.order) }

// Credits returns the number of credits added, duplicates included.
func (ix *Index) Credits() int { return ix.credits }
