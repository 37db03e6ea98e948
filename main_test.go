package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itamaraca/sequence"
)

func runViper(t *testing.T) (*viper.Viper, string) {
	t.Helper()

	dir := t.TempDir()
	v := testViper()
	v.Set("output.dir", dir)
	v.Set("log.level", "error")
	return v, dir
}

func readLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestRun_ReferenceExport(t *testing.T) {
	v, dir := runViper(t)
	v.Set("count", 20)

	var console bytes.Buffer
	require.NoError(t, run(context.Background(), v, &console))

	lines := readLines(t, filepath.Join(dir, "itamaraca_results.csv"))
	require.Len(t, lines, 21)
	assert.Equal(t, "Index,Value", lines[0])
	assert.Equal(t, "0,5656.1500", lines[1])
	assert.Equal(t, "1,1089.3155", lines[2])

	out := console.String()
	assert.Contains(t, out, "Generating 20 numbers...\n")
	assert.Contains(t, out, "Sample 1: 5656.1500\nSample 2: 1089.3155\n")
	assert.Contains(t, out, "Sample 5: ")
	assert.NotContains(t, out, "Sample 6: ")
	assert.Contains(t, out, "samples: 20\n")
}

func TestRun_RunID(t *testing.T) {
	v, dir := runViper(t)
	v.Set("count", 3)
	v.Set("output.file", "ita.csv")
	v.Set("output.run_id", true)
	v.Set("output.sync", "close")

	require.NoError(t, run(context.Background(), v, &bytes.Buffer{}))

	matches, err := filepath.Glob(filepath.Join(dir, "ita.*.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Len(t, readLines(t, matches[0]), 4)
}

func TestRun_UnparseableSettingLeavesNoFile(t *testing.T) {
	for key, value := range map[string]string{
		"bound":      "1e4x",
		"multiplier": "abc",
		"count":      "ten",
	} {
		v, dir := runViper(t)
		v.Set(key, value)

		var console bytes.Buffer
		err := run(context.Background(), v, &console)
		require.ErrorContains(t, err, "cannot parse '"+key+"'")

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.Empty(t, console.String())
	}
}

func TestRun_InvalidGeneratorLeavesNoFile(t *testing.T) {
	for _, seeds := range []string{"1,2", "1,2,3,4", "1,NaN,3"} {
		v, dir := runViper(t)
		v.Set("seeds", seeds)

		var console bytes.Buffer
		err := run(context.Background(), v, &console)
		require.ErrorIs(t, err, sequence.ErrInvalidArgument, "seeds %s", seeds)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.Empty(t, console.String())
	}

	v, dir := runViper(t)
	v.Set("multiplier", "+Inf")
	require.ErrorIs(t, run(context.Background(), v, &bytes.Buffer{}), sequence.ErrInvalidArgument)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_BadOutput(t *testing.T) {
	v, dir := runViper(t)
	v.Set("output.flags", []string{"bogus"})
	require.Error(t, run(context.Background(), v, &bytes.Buffer{}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// output dir is a regular file
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	v, _ = runViper(t)
	v.Set("output.dir", file)
	require.Error(t, run(context.Background(), v, &bytes.Buffer{}))
}

func TestRun_Interrupted(t *testing.T) {
	v, dir := runViper(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var console bytes.Buffer
	require.NoError(t, run(ctx, v, &console))

	assert.Equal(t, []string{"Index,Value"}, readLines(t, filepath.Join(dir, "itamaraca_results.csv")))
	assert.Contains(t, console.String(), "Saved 0 samples")
}
