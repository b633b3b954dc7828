package cast

import (
	"fmt"
	"io"
	"os"
)

// Load reads a cast stream into a new Index and offers every distinct actor
// to sink (which may be nil).
//
// The stream is consumed in full before anything is committed: on a read
// failure the error wraps ErrRead, sink is untouched and no Index is returned.
func Load(r io.Reader, sink NodeSink) (*Index, error) {
	recs, err := ReadRecords(r)
	if err != nil {
		return nil, err
	}

	ix := NewIndex()
	for _, rec := range recs {
		ix.Add(rec)
	}
	if sink != nil {
		for _, a := range ix.actors {
			sink.InsertNode(a)
		}
	}

	return ix, nil
}

// LoadFile opens path and calls Load on it.
func LoadFile(path string, sink NodeSink) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cast: open %s: %w", path, err)
	}
	defer f.Close()

	ix, err := Load(f, sink)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ix, nil
}

// ReadPairsFile opens path and calls ReadPairs on it.
func ReadPairsFile(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cast: open %s: %w", path, err)
	}
	defer f.Close()

	pairs, err := ReadPairs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pairs, nil
}
