// Package requirement loads performance requirement declarations and checks them
// against measured metrics.
package requirement

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// GlobalKey is the reserved top-level key holding requirements that apply in every suite.
const GlobalKey = "global"

// Requirements maps a metric key to an interval string.
type Requirements map[string]string

// Keys returns the metric keys in lexical order.
func (r Requirements) Keys() []string {
	keys := make([]string, 0, len(r))
	for key := range r {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Clone returns an independent copy.
func (r Requirements) Clone() Requirements {
	out := make(Requirements, len(r))
	for key, rng := range r {
		out[key] = rng
	}

	return out
}

// UnmarshalYAML reads every requirement value as text. Values that are not plain scalars,
// such as an unquoted `[1,10]` sequence, keep their YAML source so the interval parser
// rejects them for that key alone.
func (r *Requirements) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of metric keys to ranges", value.Line)
	}

	out := make(Requirements, len(value.Content)/2)

	for i := 0; i+1 < len(value.Content); i += 2 {
		key, node := value.Content[i], value.Content[i+1]

		if node.Kind == yaml.ScalarNode {
			out[key.Value] = node.Value
			continue
		}

		data, err := yaml.Marshal(node)
		if err != nil {
			return fmt.Errorf("line %d: encoding requirement %s: %w", node.Line, key.Value, err)
		}

		out[key.Value] = strings.TrimSpace(string(data))
	}

	*r = out

	return nil
}

// GlobalScope holds the requirements declared under the reserved global key.
type GlobalScope struct {
	Testcases map[string]Requirements `yaml:"testcases"`
}

// Declaration is a performance requirement declaration. Global requirements are keyed by
// test case name; suite requirements by suite name and then test case name.
type Declaration struct {
	Global GlobalScope
	Suites map[string]map[string]Requirements
}

// LoadDeclaration reads a YAML requirement declaration from path.
func LoadDeclaration(path string) (*Declaration, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: declaration path is user supplied
	if err != nil {
		return nil, fmt.Errorf("reading requirement declaration: %w", err)
	}

	declr, err := ParseDeclaration(data)
	if err != nil {
		return nil, fmt.Errorf("parsing requirement declaration %s: %w", path, err)
	}

	return declr, nil
}

// ParseDeclaration decodes a YAML requirement declaration.
func ParseDeclaration(data []byte) (*Declaration, error) {
	declr := &Declaration{}
	if err := yaml.Unmarshal(data, declr); err != nil {
		return nil, err
	}

	return declr, nil
}

// UnmarshalYAML splits the reserved global key from the per-suite keys.
func (d *Declaration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping at the top level", value.Line)
	}

	d.Suites = make(map[string]map[string]Requirements)

	for i := 0; i+1 < len(value.Content); i += 2 {
		key, node := value.Content[i], value.Content[i+1]

		if key.Value == GlobalKey {
			if err := node.Decode(&d.Global); err != nil {
				return fmt.Errorf("decoding %s: %w", GlobalKey, err)
			}

			continue
		}

		var suite map[string]Requirements
		if err := node.Decode(&suite); err != nil {
			return fmt.Errorf("decoding suite %s: %w", key.Value, err)
		}

		d.Suites[key.Value] = suite
	}

	return nil
}

// ForCase returns the requirements applying to a test case: the global entry for the case
// overlaid by the suite entry for the case. The result is always a fresh mapping.
func (d *Declaration) ForCase(suite, tcase string) Requirements {
	merged := d.Global.Testcases[tcase].Clone()

	for key, rng := range d.Suites[suite][tcase] {
		merged[key] = rng
	}

	return merged
}
