package requirement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDeclaration = `global:
  testcases:
    read_test:
      iops: "[1000;2000]"
      lat: "[0;5]msec"
    write_test:
      iops: "[500;inf["
fio_suite:
  read_test:
    iops: "[1500;2500]"
  extra_test:
    bw: "[1;10]GiB"
`

func TestParseDeclaration(t *testing.T) {
	declr, err := ParseDeclaration([]byte(sampleDeclaration))
	require.NoError(t, err)

	require.Len(t, declr.Global.Testcases, 2)
	assert.Equal(t, Requirements{"iops": "[500;inf["}, declr.Global.Testcases["write_test"])

	require.Contains(t, declr.Suites, "fio_suite")
	assert.NotContains(t, declr.Suites, GlobalKey)
	assert.Equal(t, Requirements{"bw": "[1;10]GiB"}, declr.Suites["fio_suite"]["extra_test"])
}

func TestDeclaration_ForCase(t *testing.T) {
	declr, err := ParseDeclaration([]byte(sampleDeclaration))
	require.NoError(t, err)

	tests := []struct {
		name     string
		suite    string
		tcase    string
		expected Requirements
	}{
		{
			name:     "suite overrides global key",
			suite:    "fio_suite",
			tcase:    "read_test",
			expected: Requirements{"iops": "[1500;2500]", "lat": "[0;5]msec"},
		},
		{
			name:     "global only",
			suite:    "other_suite",
			tcase:    "read_test",
			expected: Requirements{"iops": "[1000;2000]", "lat": "[0;5]msec"},
		},
		{
			name:     "suite only",
			suite:    "fio_suite",
			tcase:    "extra_test",
			expected: Requirements{"bw": "[1;10]GiB"},
		},
		{
			name:     "no requirements",
			suite:    "fio_suite",
			tcase:    "unknown",
			expected: Requirements{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, declr.ForCase(tt.suite, tt.tcase))
		})
	}
}

func TestDeclaration_ForCaseDoesNotMutateGlobal(t *testing.T) {
	declr, err := ParseDeclaration([]byte(sampleDeclaration))
	require.NoError(t, err)

	merged := declr.ForCase("fio_suite", "read_test")
	assert.Equal(t, "[1500;2500]", merged["iops"])

	merged["new"] = "[0;1]"

	assert.Equal(t, Requirements{"iops": "[1000;2000]", "lat": "[0;5]msec"}, declr.Global.Testcases["read_test"])
	assert.Equal(t, Requirements{"iops": "[1000;2000]", "lat": "[0;5]msec"}, declr.ForCase("other_suite", "read_test"))
}

func TestDeclaration_Empty(t *testing.T) {
	declr, err := ParseDeclaration(nil)
	require.NoError(t, err)
	assert.Empty(t, declr.ForCase("any", "any"))
}

func TestParseDeclaration_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "top level list", content: "- a\n- b\n"},
		{name: "global not a mapping", content: "global: [1, 2]\n"},
		{name: "suite not a mapping", content: "suite: text\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDeclaration([]byte(tt.content))
			require.Error(t, err)
		})
	}
}

func TestParseDeclaration_NonScalarRangeKeptAsText(t *testing.T) {
	declr, err := ParseDeclaration([]byte(`global:
  testcases:
    read_test:
      iops: [1,10]
      lat: "[0;5]msec"
      bw: 100
`))
	require.NoError(t, err)

	reqs := declr.ForCase("fio", "read_test")
	require.Len(t, reqs, 3)
	assert.Equal(t, "[0;5]msec", reqs["lat"])
	assert.Equal(t, "100", reqs["bw"])
	assert.Contains(t, reqs["iops"], "1")

	checked := Check(reqs, newRecord(map[string]float64{"iops": 5, "lat": 1000, "bw": 100}))
	require.Len(t, checked, 3)
	assert.True(t, checked[0].Error)
	assert.True(t, checked[1].Error)
	assert.Contains(t, checked[1].Msg, "malformed")
	assert.False(t, checked[2].Error)
}

func TestLoadDeclaration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preqs.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDeclaration), 0o600))

	declr, err := LoadDeclaration(path)
	require.NoError(t, err)
	assert.Len(t, declr.Suites, 1)

	_, err = LoadDeclaration(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestRequirements_Keys(t *testing.T) {
	reqs := Requirements{"lat": "[0;1]", "bw": "[0;1]", "iops": "[0;1]"}
	assert.Equal(t, []string{"bw", "iops", "lat"}, reqs.Keys())
}
