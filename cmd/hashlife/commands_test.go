package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCommandReportsBuiltinPattern(t *testing.T) {
	*cfg = *NewConfig()
	rootCmd.SetArgs([]string{"stats", "--pattern", "glider"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "population: 5")
}

func TestRunCommandAdvancesGlider(t *testing.T) {
	*cfg = *NewConfig()
	rootCmd.SetArgs([]string{"run", "--pattern", "glider", "--macrosteps", "1"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)

	err := rootCmd.Execute()
	require.NoError(t, err)
}

func TestLookupBuiltinUnknownPatternFails(t *testing.T) {
	_, ok := lookupBuiltin("not-a-real-pattern")
	assert.False(t, ok)
}
