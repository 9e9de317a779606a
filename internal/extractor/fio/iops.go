package fio

import (
	"fmt"

	"github.com/ethpandaops/cij-analyser/internal/metrics"
	"github.com/ethpandaops/cij-analyser/internal/runner"
	"github.com/sirupsen/logrus"
)

// MetricIOPS is the metric key the IOPS extractors emit.
const MetricIOPS = "iops"

// Extractor names.
const (
	NameIOPSRead  = "fio_json_iops_read"
	NameIOPSWrite = "fio_json_iops_write"
	NameIOPSTrim  = "fio_json_iops_trim"
)

// IOPSExtractor emits one record per fio job carrying the IO rate of a single direction.
type IOPSExtractor struct {
	name string
	pick func(IOPS) float64
	log  logrus.FieldLogger
}

// NewIOPSRead creates the extractor recording read IOPS.
func NewIOPSRead(log logrus.FieldLogger) *IOPSExtractor {
	return newIOPSExtractor(log, NameIOPSRead, func(i IOPS) float64 { return i.Read })
}

// NewIOPSWrite creates the extractor recording write IOPS.
func NewIOPSWrite(log logrus.FieldLogger) *IOPSExtractor {
	return newIOPSExtractor(log, NameIOPSWrite, func(i IOPS) float64 { return i.Write })
}

// NewIOPSTrim creates the extractor recording trim IOPS.
func NewIOPSTrim(log logrus.FieldLogger) *IOPSExtractor {
	return newIOPSExtractor(log, NameIOPSTrim, func(i IOPS) float64 { return i.Trim })
}

func newIOPSExtractor(log logrus.FieldLogger, name string, pick func(IOPS) float64) *IOPSExtractor {
	return &IOPSExtractor{
		name: name,
		pick: pick,
		log:  log.WithField("extractor", name),
	}
}

// Name returns the registry identifier.
func (e *IOPSExtractor) Name() string {
	return e.name
}

// ExtractMetrics locates the fio output files of the test case, writes the extracted
// records to the case metrics store and returns them.
func (e *IOPSExtractor) ExtractMetrics(tcase *runner.TestCase) ([]metrics.Record, error) {
	auxRoot := tcase.AuxPath()

	paths, err := OutputFiles(auxRoot)
	if err != nil {
		return nil, err
	}

	measured, err := ExtractIOPS(paths)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", tcase.Name, err)
	}

	records := make([]metrics.Record, 0, len(measured))

	for _, iops := range measured {
		rec := metrics.NewRecord(iops.Ctx)
		rec.Set(MetricIOPS, e.pick(iops))
		records = append(records, rec)
	}

	if err := metrics.Dump(auxRoot, records); err != nil {
		return nil, err
	}

	e.log.WithFields(logrus.Fields{
		"testcase": tcase.Name,
		"files":    len(paths),
		"records":  len(records),
	}).Debug("extracted metrics")

	return records, nil
}
