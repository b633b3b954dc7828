package cast

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadRecords parses a cast stream. The first line is a header and is
// discarded. Rows that do not split into exactly three fields, or whose year
// is not a base-10 integer, are skipped.
//
// A failure of r before EOF yields an error wrapping ErrRead and no records.
func ReadRecords(r io.Reader) ([]Record, error) {
	var recs []Record
	err := scanRows(r, func(fields []string) {
		if len(fields) != recordFields {
			return
		}
		year, err := strconv.Atoi(fields[2])
		if err != nil {
			return
		}
		recs = append(recs, Record{Actor: fields[0], Title: fields[1], Year: year})
	})
	if err != nil {
		return nil, err
	}

	return recs, nil
}

// ReadPairs parses a query stream: a header line, then src<TAB>dst rows.
// Rows with a field count other than two are skipped.
func ReadPairs(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	err := scanRows(r, func(fields []string) {
		if len(fields) != pairFields {
			return
		}
		pairs = append(pairs, Pair{Src: fields[0], Dst: fields[1]})
	})
	if err != nil {
		return nil, err
	}

	return pairs, nil
}

// scanRows feeds every non-header line of r, split into fields, to fn.
// Lines have no length limit; a final line without "\n" still counts.
func scanRows(r io.Reader, fn func([]string)) error {
	if r == nil {
		return ErrNilReader
	}

	br := bufio.NewReader(r)
	header := true
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %v", ErrRead, err)
		}
		if line != "" {
			if header {
				header = false
			} else {
				fn(SplitFields(strings.TrimSuffix(line, "\n")))
			}
		}
		if err != nil {
			return nil
		}
	}
}

// SplitFields splits line on TAB. A trailing "\r" is removed first, and one
// trailing TAB terminates the last field instead of opening an empty one, so
// "a\tb\t" has two fields while "a\t\tb" has three. An empty line has none.
func SplitFields(line string) []string {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return nil
	}
	fields := strings.Split(line, "\t")
	if fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}

	return fields
}
