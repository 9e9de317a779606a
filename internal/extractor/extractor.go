// Package extractor defines the metric extractor contract and the registry resolving
// extractors by name.
package extractor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ethpandaops/cij-analyser/internal/extractor/fio"
	"github.com/ethpandaops/cij-analyser/internal/metrics"
	"github.com/ethpandaops/cij-analyser/internal/runner"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInitialization is returned when extractors cannot be set up.
	ErrInitialization = errors.New("initialization error")
	// ErrNotRecognized is returned when resolving an unknown or empty extractor name.
	ErrNotRecognized = fmt.Errorf("%w: extractor not recognized", ErrInitialization)

	errDuplicateExtractor = fmt.Errorf("%w: duplicate extractor", ErrInitialization)
)

// Extractor reads the artifacts of a test case and produces metric records. Implementations
// persist the records to the case metrics store, replacing prior contents.
type Extractor interface {
	Name() string
	ExtractMetrics(tcase *runner.TestCase) ([]metrics.Record, error)
}

// Registry resolves extractors by name.
type Registry struct {
	extractors map[string]Extractor
}

// NewRegistry creates a registry holding the given extractors.
func NewRegistry(extractors ...Extractor) (*Registry, error) {
	r := &Registry{
		extractors: make(map[string]Extractor, len(extractors)),
	}

	for _, e := range extractors {
		if _, ok := r.extractors[e.Name()]; ok {
			return nil, fmt.Errorf("%w '%s'", errDuplicateExtractor, e.Name())
		}

		r.extractors[e.Name()] = e
	}

	return r, nil
}

// NewDefaultRegistry creates a registry with every built-in extractor.
func NewDefaultRegistry(log logrus.FieldLogger) *Registry {
	log = log.WithField("component", "extractor")

	r, err := NewRegistry(
		fio.NewIOPSRead(log),
		fio.NewIOPSWrite(log),
		fio.NewIOPSTrim(log),
	)
	if err != nil {
		panic(err)
	}

	return r
}

// Get resolves an extractor by name.
func (r *Registry) Get(name string) (Extractor, error) {
	e, ok := r.extractors[name]
	if name == "" || !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrNotRecognized, name)
	}

	return e, nil
}

// Names returns the registered extractor names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.extractors))
	for name := range r.extractors {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Run applies every extractor to every test case of the run, in suite, case and extractor
// order, and returns the number of records extracted.
func Run(log logrus.FieldLogger, trun *runner.TestRun, extractors []Extractor) (int, error) {
	total := 0

	for _, tsuite := range trun.Testsuites {
		for _, tcase := range tsuite.Testcases {
			for _, e := range extractors {
				records, err := e.ExtractMetrics(tcase)
				if err != nil {
					return total, fmt.Errorf("%s/%s: %s: %w", tsuite.Name, tcase.Name, e.Name(), err)
				}

				log.WithFields(logrus.Fields{
					"testsuite": tsuite.Name,
					"testcase":  tcase.Name,
					"extractor": e.Name(),
					"records":   len(records),
				}).Info("extracted metrics")

				total += len(records)
			}
		}
	}

	return total, nil
}

// Compile-time interface compliance check
var _ Extractor = (*fio.IOPSExtractor)(nil)
