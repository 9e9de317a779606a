package requirement

import (
	"encoding/json"
	"fmt"

	"github.com/ethpandaops/cij-analyser/internal/metrics"
	"github.com/ethpandaops/cij-analyser/internal/rng"
)

const msgNotMeasured = "expected to be measured, but wasn't"

// CheckedRequirement is the outcome of checking one requirement against one metric record.
type CheckedRequirement struct {
	Key   string
	Error bool
	Msg   string
	Ctx   metrics.Context
}

func (c CheckedRequirement) String() string {
	ctx := "{}"
	if len(c.Ctx) > 0 {
		if data, err := json.Marshal(c.Ctx); err == nil {
			ctx = string(data)
		}
	}

	return fmt.Sprintf("%s: %s %s", c.Key, c.Msg, ctx)
}

// Check checks every requirement against the record, one outcome per metric key.
func Check(reqs Requirements, record metrics.Record) []CheckedRequirement {
	checked := make([]CheckedRequirement, 0, len(reqs))

	add := func(key, msg string, isErr bool) {
		checked = append(checked, CheckedRequirement{
			Key:   key,
			Error: isErr,
			Msg:   msg,
			Ctx:   record.Ctx,
		})
	}

	for _, key := range reqs.Keys() {
		rngStr := reqs[key]

		value, ok := record.Get(key)
		if !ok {
			add(key, msgNotMeasured, true)

			continue
		}

		r, err := rng.Parse(rngStr)
		if err != nil {
			add(key, err.Error(), true)

			continue
		}

		if !r.Contains(value) {
			add(key, fmt.Sprintf("%.3f in %s failed", value, rngStr), true)

			continue
		}

		add(key, fmt.Sprintf("%.3f in %s satisfied", value, rngStr), false)
	}

	return checked
}

// CountErrors returns the number of outcomes with the error flag set.
func CountErrors(checked []CheckedRequirement) int {
	n := 0

	for _, c := range checked {
		if c.Error {
			n++
		}
	}

	return n
}
