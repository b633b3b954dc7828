// Package cast reads tab-separated movie credit files and groups them for
// the graph and connectivity engines.
//
// Input formats
//
//	cast file:  Actor<TAB>Movie<TAB>Year, one credit per line, header first.
//	pairs file: Actor1<TAB>Actor2, one query per line, header first.
//
// Malformed rows (wrong field count, non-integer year) are skipped without
// error. Only a failing stream is an error, reported as ErrRead.
//
// Grouping
//
//	Index keys movies by (year, title), so the same title released in two
//	years is two movies. Movies() and Buckets() iterate in ascending year,
//	then title, which is the order the connectivity pass consumes them in.
package cast
