// Package fio extracts metrics from fio JSON output files found in a test case aux root.
package fio

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ethpandaops/cij-analyser/internal/metrics"
)

// OutputPattern matches fio output artifacts inside an aux root.
const OutputPattern = "fio-output*"

const maxLineSize = 4 * 1024 * 1024

var errNoJSONObject = errors.New("no JSON object found")

// Output is the subset of fio's JSON output the extractors use.
type Output struct {
	Timestamp     int64         `json:"timestamp"`
	GlobalOptions GlobalOptions `json:"global options"`
	Jobs          []Job         `json:"jobs"`
}

// GlobalOptions are the job options shared by all jobs in one fio invocation.
type GlobalOptions struct {
	IOEngine string `json:"ioengine"`
	BS       string `json:"bs"`
	IODepth  string `json:"iodepth"`
}

// Job holds the per-direction statistics for one fio job.
type Job struct {
	Read  Stats `json:"read"`
	Write Stats `json:"write"`
	Trim  Stats `json:"trim"`
}

// Stats are the statistics for one I/O direction.
type Stats struct {
	IOPS float64 `json:"iops"`
}

// IOPS is the IO rate of a single job, per direction.
type IOPS struct {
	Ctx   metrics.Context
	Read  float64
	Write float64
	Trim  float64
}

// OutputFiles returns the fio output files in auxRoot in lexical order.
func OutputFiles(auxRoot string) ([]string, error) {
	names, err := doublestar.Glob(os.DirFS(auxRoot), OutputPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", auxRoot, err)
	}

	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(auxRoot, name))
	}

	return paths, nil
}

// ParseOutputFile reads the JSON object embedded in a fio output file. The object starts
// at the first line beginning with `{` and ends at the next line beginning with `}`.
func ParseOutputFile(path string) (*Output, error) {
	f, err := os.Open(path) //nolint:gosec // G304: artifact paths come from the aux root
	if err != nil {
		return nil, fmt.Errorf("opening fio output: %w", err)
	}
	defer f.Close()

	var (
		buf      strings.Builder
		scanner  = bufio.NewScanner(f)
		inObject bool
	)

	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "{") {
			inObject = true
		}

		if inObject {
			buf.WriteString(line)
			buf.WriteByte('\n')
		}

		if inObject && strings.HasPrefix(line, "}") {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading fio output %s: %w", path, err)
	}

	if !inObject {
		return nil, fmt.Errorf("%w in %s", errNoJSONObject, path)
	}

	var out Output
	if err := json.Unmarshal([]byte(buf.String()), &out); err != nil {
		return nil, fmt.Errorf("decoding fio output %s: %w", path, err)
	}

	return &out, nil
}

// ExtractIOPS parses every given fio output file and returns the IOPS of each job, in
// file order and then job order.
func ExtractIOPS(paths []string) ([]IOPS, error) {
	var out []IOPS

	for _, path := range paths {
		parsed, err := ParseOutputFile(path)
		if err != nil {
			return nil, err
		}

		for n, job := range parsed.Jobs {
			out = append(out, IOPS{
				Ctx:   newContext(parsed, filepath.Base(path), n),
				Read:  job.Read.IOPS,
				Write: job.Write.IOPS,
				Trim:  job.Trim.IOPS,
			})
		}
	}

	return out, nil
}

func newContext(out *Output, fname string, jobID int) metrics.Context {
	return metrics.Context{
		"timestamp": out.Timestamp,
		"ioengine":  out.GlobalOptions.IOEngine,
		"bs":        out.GlobalOptions.BS,
		"iodepth":   out.GlobalOptions.IODepth,
		"fname":     fname,
		"job_id":    jobID,
	}
}
