package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmezali/iacscan/types"
)

func setValidFlags(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.tf"), []byte("{}"), 0o644))

	iacPath = dir
	outputFormat = "text"
	severity = "MEDIUM"
	framework = "terraform"
	return dir
}

func TestValidateAcceptsDefaults(t *testing.T) {
	setValidFlags(t)
	assert.NoError(t, validate(rootCmd, nil))
}

func TestValidateRejectsMissingPath(t *testing.T) {
	setValidFlags(t)
	iacPath = filepath.Join(t.TempDir(), "does-not-exist")

	err := validate(rootCmd, nil)
	assert.ErrorIs(t, err, types.ErrInvalidPath)
}

func TestValidateNormalizesFormat(t *testing.T) {
	setValidFlags(t)
	outputFormat = "JSON"

	require.NoError(t, validate(rootCmd, nil))
	assert.Equal(t, "json", outputFormat)
}

func TestValidateRejectsBadFormat(t *testing.T) {
	setValidFlags(t)
	outputFormat = "yaml"

	err := validate(rootCmd, nil)
	assert.ErrorIs(t, err, types.ErrInvalidFormat)
}

func TestValidateRejectsBadSeverity(t *testing.T) {
	setValidFlags(t)
	severity = "critical"

	err := validate(rootCmd, nil)
	assert.ErrorIs(t, err, types.ErrInvalidSeverity)
}

func TestValidateRejectsBadFramework(t *testing.T) {
	setValidFlags(t)
	framework = "pulumi"

	err := validate(rootCmd, nil)
	assert.ErrorIs(t, err, types.ErrInvalidFramework)
}
