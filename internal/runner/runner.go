// Package runner holds the run record produced by the test runner: a test run owning
// test suites owning test cases, each carrying a requirement status.
package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Status is the verdict of a run, suite or case.
type Status string

const (
	// StatusUnknown is the status of anything not yet evaluated.
	StatusUnknown Status = "UNKN"
	// StatusPass marks a satisfied verdict.
	StatusPass Status = "PASS"
	// StatusFail marks a violated verdict.
	StatusFail Status = "FAIL"
)

// DefaultFilename is the run record filename inside a run output directory.
const DefaultFilename = "trun.yml"

var (
	errDuplicateSuite = errors.New("duplicate test suite name")
	errDuplicateCase  = errors.New("duplicate test case name")
	errEmptyEntry     = errors.New("empty list entry")
)

// TestCase is a single test case and the location of its artifacts.
type TestCase struct {
	Name             string         `yaml:"name"`
	AuxRoot          string         `yaml:"aux_root"`
	AnalysisLogFpath string         `yaml:"analysis_log"`
	StatusPreq       Status         `yaml:"status_preq,omitempty"`
	Extra            map[string]any `yaml:",inline"`

	base string
}

// AuxPath returns the artifact directory, resolved against the run record directory.
func (c *TestCase) AuxPath() string {
	return c.resolve(c.AuxRoot)
}

// AnalysisLogPath returns the analysis log path, resolved against the run record directory.
func (c *TestCase) AnalysisLogPath() string {
	return c.resolve(c.AnalysisLogFpath)
}

func (c *TestCase) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.base == "" {
		return p
	}

	return filepath.Join(c.base, p)
}

// TestSuite is an ordered collection of uniquely named test cases.
type TestSuite struct {
	Name       string         `yaml:"name"`
	Testcases  []*TestCase    `yaml:"testcases"`
	StatusPreq Status         `yaml:"status_preq,omitempty"`
	Extra      map[string]any `yaml:",inline"`
}

// TestRun is the root of the run record.
type TestRun struct {
	Testsuites []*TestSuite   `yaml:"testsuites"`
	StatusPreq Status         `yaml:"status_preq,omitempty"`
	Extra      map[string]any `yaml:",inline"`

	// Fpath is where the record was loaded from and is saved to.
	Fpath string `yaml:"-"`
}

// RequirementStatus returns the case requirement status, Unknown when unset.
func (c *TestCase) RequirementStatus() Status {
	if c.StatusPreq == "" {
		return StatusUnknown
	}

	return c.StatusPreq
}

// RequirementStatus returns the suite requirement status, Unknown when unset.
func (s *TestSuite) RequirementStatus() Status {
	if s.StatusPreq == "" {
		return StatusUnknown
	}

	return s.StatusPreq
}

// RequirementStatus returns the run requirement status, Unknown when unset.
func (r *TestRun) RequirementStatus() Status {
	if r.StatusPreq == "" {
		return StatusUnknown
	}

	return r.StatusPreq
}

// Load reads a run record. Relative case paths resolve against the record's directory.
func Load(path string) (*TestRun, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: run record path is user supplied
	if err != nil {
		return nil, fmt.Errorf("reading run record: %w", err)
	}

	trun, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing run record %s: %w", path, err)
	}

	trun.Fpath = path
	trun.setBase(filepath.Dir(path))

	return trun, nil
}

// Parse decodes and validates a run record.
func Parse(data []byte) (*TestRun, error) {
	var trun TestRun
	if err := yaml.Unmarshal(data, &trun); err != nil {
		return nil, err
	}

	if err := trun.validate(); err != nil {
		return nil, err
	}

	return &trun, nil
}

// Save writes the run record back to the path it was loaded from.
func Save(trun *TestRun) error {
	if trun.Fpath == "" {
		return errors.New("run record has no path")
	}

	data, err := yaml.Marshal(trun)
	if err != nil {
		return fmt.Errorf("encoding run record: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(trun.Fpath), ".trun-*.yml")
	if err != nil {
		return fmt.Errorf("creating temporary run record: %w", err)
	}

	defer func() { _ = os.Remove(tmp.Name()) }()

	mode := os.FileMode(0o644)
	if fi, err := os.Stat(trun.Fpath); err == nil {
		mode = fi.Mode().Perm()
	}

	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("setting run record mode: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("writing run record: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing run record: %w", err)
	}

	if err := os.Rename(tmp.Name(), trun.Fpath); err != nil {
		return fmt.Errorf("replacing run record: %w", err)
	}

	return nil
}

func (r *TestRun) validate() error {
	suites := make(map[string]struct{}, len(r.Testsuites))

	for i, tsuite := range r.Testsuites {
		if tsuite == nil {
			return fmt.Errorf("%w: testsuites[%d]", errEmptyEntry, i)
		}

		if _, ok := suites[tsuite.Name]; ok {
			return fmt.Errorf("%w: %s", errDuplicateSuite, tsuite.Name)
		}

		suites[tsuite.Name] = struct{}{}

		cases := make(map[string]struct{}, len(tsuite.Testcases))

		for j, tcase := range tsuite.Testcases {
			if tcase == nil {
				return fmt.Errorf("%w: %s testcases[%d]", errEmptyEntry, tsuite.Name, j)
			}

			if _, ok := cases[tcase.Name]; ok {
				return fmt.Errorf("%w: %s/%s", errDuplicateCase, tsuite.Name, tcase.Name)
			}

			cases[tcase.Name] = struct{}{}
		}
	}

	return nil
}

func (r *TestRun) setBase(base string) {
	for _, tsuite := range r.Testsuites {
		for _, tcase := range tsuite.Testcases {
			tcase.base = base
		}
	}
}
