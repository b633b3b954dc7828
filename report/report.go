// Package report records a summary of one costar run and saves it as TOML
// or YAML.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrFormat indicates a report path whose extension is not .toml, .yaml or .yml.
var ErrFormat = errors.New("report: unsupported file extension")

// Connectivity holds the counters of a connections run.
type Connectivity struct {
	Buckets    int `toml:"buckets" yaml:"buckets"`
	Checks     int `toml:"checks" yaml:"checks"`
	Resolved   int `toml:"resolved" yaml:"resolved"`
	Unresolved int `toml:"unresolved" yaml:"unresolved"`
}

// Report is the serializable summary of a run. Durations are stored as
// nanosecond int64 values; go-toml has no native time.Duration.
type Report struct {
	RunID       string        `toml:"run_id" yaml:"run_id"`
	Command     string        `toml:"command" yaml:"command"`
	Algorithm   string        `toml:"algorithm" yaml:"algorithm"`
	CastFile    string        `toml:"cast_file" yaml:"cast_file"`
	PairsFile   string        `toml:"pairs_file" yaml:"pairs_file"`
	OutputFile  string        `toml:"output_file" yaml:"output_file"`
	StartedAt   time.Time     `toml:"started_at" yaml:"started_at"`
	CompletedAt time.Time     `toml:"completed_at" yaml:"completed_at"`
	DurationNs  int64         `toml:"duration_ns" yaml:"duration_ns"`
	Actors      int           `toml:"actors" yaml:"actors"`
	Movies      int           `toml:"movies" yaml:"movies"`
	Credits     int           `toml:"credits" yaml:"credits"`
	Pairs       int           `toml:"pairs" yaml:"pairs"`
	Found       int           `toml:"found" yaml:"found"`
	Connections *Connectivity `toml:"connections,omitempty" yaml:"connections,omitempty"`
}

// New starts a report for command with a fresh run id.
func New(command string) *Report {
	return &Report{
		RunID:     uuid.New().String(),
		Command:   command,
		StartedAt: time.Now().UTC(),
	}
}

// Finish stamps the completion time and elapsed duration.
func (r *Report) Finish() {
	r.CompletedAt = time.Now().UTC()
	r.DurationNs = r.CompletedAt.Sub(r.StartedAt).Nanoseconds()
}

// Elapsed returns the recorded duration.
func (r *Report) Elapsed() time.Duration { return time.Duration(r.DurationNs) }

type codec struct {
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

func codecFor(path string) (codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return codec{marshal: toml.Marshal, unmarshal: toml.Unmarshal}, nil
	case ".yaml", ".yml":
		return codec{marshal: yaml.Marshal, unmarshal: yaml.Unmarshal}, nil
	default:
		return codec{}, fmt.Errorf("%w: %q", ErrFormat, path)
	}
}

// Save writes r to path, choosing the encoding by extension. The file is
// written to a temporary sibling and renamed into place.
func (r *Report) Save(path string) error {
	c, err := codecFor(path)
	if err != nil {
		return err
	}
	data, err := c.marshal(r)
	if err != nil {
		return fmt.Errorf("report: marshal: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("report: write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("report: rename: %w", err)
	}

	return nil
}

// Load reads a report saved by Save.
func Load(path string) (*Report, error) {
	c, err := codecFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("report: read: %w", err)
	}

	var r Report
	if err := c.unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("report: unmarshal %s: %w", path, err)
	}

	return &r, nil
}
