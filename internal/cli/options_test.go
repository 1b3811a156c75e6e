package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	var out bytes.Buffer

	opts, err := Parse("elolcd", []string{"guardian"}, &out)
	require.NoError(t, err)

	assert.Equal(t, &Options{
		Mode:       "ToO",
		ConfigFile: "./config.yml",
		LogLevel:   "info",
		EnvFile:    ".env",
		Handle:     "guardian",
	}, opts)
	assert.Empty(t, out.String())
}

func TestParseShortFlags(t *testing.T) {
	opts, err := Parse("elolcd", []string{"-m", "IB", "-f", "/etc/elolcd.yml", "guardian"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "IB", opts.Mode)
	assert.Equal(t, "/etc/elolcd.yml", opts.ConfigFile)
	assert.Equal(t, "guardian", opts.Handle)
}

func TestParseLongFlags(t *testing.T) {
	opts, err := Parse("elolcd", []string{
		"--mode=Zone Control",
		"--config-file", "c.yml",
		"--log-level", "debug",
		"--log-file", "/tmp/elolcd.log",
		"--env-file", "prod.env",
		"guardian",
	}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "Zone Control", opts.Mode)
	assert.Equal(t, "c.yml", opts.ConfigFile)
	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, "/tmp/elolcd.log", opts.LogFile)
	assert.Equal(t, "prod.env", opts.EnvFile)
}

func TestParseListModesWithoutHandle(t *testing.T) {
	opts, err := Parse("elolcd", []string{"-l"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.True(t, opts.ListModes)
	assert.Empty(t, opts.Handle)
}

func TestParseMissingHandle(t *testing.T) {
	var out bytes.Buffer

	_, err := Parse("elolcd", []string{"-m", "IB"}, &out)
	assert.ErrorIs(t, err, ErrMissingHandle)
	assert.Contains(t, out.String(), "Usage: elolcd [flags] PSN")
}

func TestParseExtraArguments(t *testing.T) {
	_, err := Parse("elolcd", []string{"guardian", "other"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unexpected arguments")
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer

	_, err := Parse("elolcd", []string{"--help"}, &out)
	assert.ErrorIs(t, err, pflag.ErrHelp)
	assert.Contains(t, out.String(), "--list-modes")
}
