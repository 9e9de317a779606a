package actions

import (
	"fmt"
	"io"

	"github.com/ethpandaops/cij-analyser/internal/config"
	"github.com/ethpandaops/cij-analyser/internal/extractor"
	"github.com/ethpandaops/cij-analyser/internal/runner"
	"github.com/sirupsen/logrus"
)

// ExtractOptions selects the inputs of an extraction pass.
type ExtractOptions struct {
	// TrunPath is the run record whose test cases are extracted.
	TrunPath string
	// Extractor is the registry name of the extractor. Falls back to the configured default.
	Extractor string
}

// Extract runs the named extractor over every test case of the run record. It returns zero
// on success and the number of errors encountered otherwise.
func Extract(log logrus.FieldLogger, cfg *config.Config, opts ExtractOptions) int {
	log = log.WithField("action", "extract")

	if err := extract(log, cfg, opts); err != nil {
		log.WithError(err).Error("failed to run data extraction")

		return 1
	}

	return 0
}

func extract(log logrus.FieldLogger, cfg *config.Config, opts ExtractOptions) error {
	trun, err := runner.Load(opts.TrunPath)
	if err != nil {
		return err
	}

	name := opts.Extractor
	if name == "" {
		name = cfg.Extractor
	}

	e, err := extractor.NewDefaultRegistry(log).Get(name)
	if err != nil {
		return err
	}

	total, err := extractor.Run(log, trun, []extractor.Extractor{e})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"extractor": name,
		"records":   total,
	}).Info("extraction complete")

	return nil
}

// ListExtractors writes the names of the registered extractors.
func ListExtractors(log logrus.FieldLogger, w io.Writer) {
	for _, name := range extractor.NewDefaultRegistry(log).Names() {
		fmt.Fprintln(w, name)
	}
}
