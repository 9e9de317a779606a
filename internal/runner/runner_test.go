package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRun = `testsuites:
  - name: fio
    testcases:
      - name: read_test
        aux_root: fio/read_test
        analysis_log: fio/read_test/analysis.log
        status: PASS
        wallc: 1.5
  - name: blk
    testcases:
      - name: write_test
        aux_root: /abs/write_test
        analysis_log: /abs/write_test/analysis.log
status: PASS
conf:
  env: qemu
`

func TestLoad_ResolvesPathsAndStatuses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(sampleRun), 0o600))

	trun, err := Load(path)
	require.NoError(t, err)
	require.Len(t, trun.Testsuites, 2)

	tcase := trun.Testsuites[0].Testcases[0]
	assert.Equal(t, "read_test", tcase.Name)
	assert.Equal(t, filepath.Join(dir, "fio/read_test"), tcase.AuxPath())
	assert.Equal(t, filepath.Join(dir, "fio/read_test/analysis.log"), tcase.AnalysisLogPath())
	assert.Equal(t, "fio/read_test", tcase.AuxRoot)
	assert.Equal(t, StatusUnknown, tcase.RequirementStatus())

	abs := trun.Testsuites[1].Testcases[0]
	assert.Equal(t, "/abs/write_test", abs.AuxPath())

	assert.Equal(t, StatusUnknown, trun.RequirementStatus())
	assert.Equal(t, StatusUnknown, trun.Testsuites[0].RequirementStatus())
}

func TestSave_RoundTripsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(sampleRun), 0o600))

	trun, err := Load(path)
	require.NoError(t, err)

	trun.StatusPreq = StatusFail
	trun.Testsuites[0].StatusPreq = StatusFail
	trun.Testsuites[0].Testcases[0].StatusPreq = StatusFail

	require.NoError(t, Save(trun))

	reloaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, StatusFail, reloaded.RequirementStatus())
	assert.Equal(t, StatusFail, reloaded.Testsuites[0].RequirementStatus())
	assert.Equal(t, StatusFail, reloaded.Testsuites[0].Testcases[0].RequirementStatus())
	assert.Equal(t, StatusUnknown, reloaded.Testsuites[1].Testcases[0].RequirementStatus())

	assert.Equal(t, "PASS", reloaded.Extra["status"])
	assert.Equal(t, map[string]any{"env": "qemu"}, reloaded.Extra["conf"])
	assert.Equal(t, "PASS", reloaded.Testsuites[0].Testcases[0].Extra["status"])
	assert.Equal(t, 1.5, reloaded.Testsuites[0].Testcases[0].Extra["wallc"])
	assert.Equal(t, "fio/read_test", reloaded.Testsuites[0].Testcases[0].AuxRoot)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSave_KeepsFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(sampleRun), 0o600))
	require.NoError(t, os.Chmod(path, 0o640))

	trun, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Save(trun))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), fi.Mode().Perm())
}

func TestSave_RequiresPath(t *testing.T) {
	require.Error(t, Save(&TestRun{}))
}

func TestParse_RejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected error
	}{
		{
			name: "duplicate suite",
			content: `testsuites:
  - name: a
  - name: a
`,
			expected: errDuplicateSuite,
		},
		{
			name: "duplicate case",
			content: `testsuites:
  - name: a
    testcases:
      - name: x
      - name: x
`,
			expected: errDuplicateCase,
		},
		{
			name: "empty suite entry",
			content: `testsuites:
  -
  - name: a
`,
			expected: errEmptyEntry,
		},
		{
			name: "empty case entry",
			content: `testsuites:
  - name: a
    testcases:
      -
`,
			expected: errEmptyEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
