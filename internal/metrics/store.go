// Package metrics provides the per-case metrics store that extractors write and the
// requirement checker reads.
package metrics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Filename is the name of the metrics store inside a test case aux root.
const Filename = "metrics.yml"

const ctxKey = "ctx"

// Context carries the provenance of a record: timestamp, tool options, source file, job index.
type Context map[string]any

// Record is one measured data point: a flat mapping of metric key to value plus its context.
type Record struct {
	Ctx    Context            `yaml:"ctx,omitempty"`
	Values map[string]float64 `yaml:",inline"`
}

// UnmarshalYAML splits the ctx entry from the metric values. Metrics recorded as null
// were not measured and are left out of Values.
func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping for a metric record", value.Line)
	}

	r.Ctx = nil
	r.Values = make(map[string]float64, len(value.Content)/2)

	for i := 0; i+1 < len(value.Content); i += 2 {
		key, node := value.Content[i], value.Content[i+1]

		if key.Value == ctxKey {
			if err := node.Decode(&r.Ctx); err != nil {
				return fmt.Errorf("decoding %s: %w", ctxKey, err)
			}

			continue
		}

		if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
			continue
		}

		var v float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("decoding metric %s: %w", key.Value, err)
		}

		r.Values[key.Value] = v
	}

	return nil
}

// NewRecord creates a record with the given context and no values.
func NewRecord(ctx Context) Record {
	return Record{
		Ctx:    ctx,
		Values: make(map[string]float64),
	}
}

// Get returns the measured value for key.
func (r Record) Get(key string) (float64, bool) {
	v, ok := r.Values[key]

	return v, ok
}

// Set stores a measured value for key.
func (r *Record) Set(key string, value float64) {
	if r.Values == nil {
		r.Values = make(map[string]float64)
	}

	r.Values[key] = value
}

// Path returns the metrics store path for an aux root.
func Path(auxRoot string) string {
	return filepath.Join(auxRoot, Filename)
}

// Load reads the metrics store under auxRoot. A missing store yields no records.
func Load(auxRoot string) ([]Record, error) {
	path := Path(auxRoot)

	data, err := os.ReadFile(path) //nolint:gosec // G304: aux root comes from the run record
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading metrics store: %w", err)
	}

	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing metrics store %s: %w", path, err)
	}

	return records, nil
}

// Dump writes records to the metrics store under auxRoot, replacing prior contents.
func Dump(auxRoot string, records []Record) error {
	if records == nil {
		records = []Record{}
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding metrics: %w", err)
	}

	data = append([]byte("---\n"), data...)

	if err := os.WriteFile(Path(auxRoot), data, 0o644); err != nil { //nolint:gosec // G306: metrics are shared artifacts
		return fmt.Errorf("writing metrics store: %w", err)
	}

	return nil
}
