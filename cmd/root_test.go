package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_ActionErrorsCarryExitCode(t *testing.T) {
	var stderr bytes.Buffer

	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"analyse", "--trun", filepath.Join(t.TempDir(), "missing.yml")})

	t.Cleanup(func() {
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()

	var ec *exitCodeError
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, 1, ec.code)
	assert.Empty(t, stderr.String())
}

func TestExitCode(t *testing.T) {
	require.NoError(t, exitCode(0))

	var ec *exitCodeError
	require.ErrorAs(t, exitCode(2), &ec)
	assert.Equal(t, 2, ec.code)
}
