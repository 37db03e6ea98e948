package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSampleStore_GetWriter(t *testing.T) {
	root := filepath.Join(t.TempDir(), "a", "b")

	ss, err := NewFileSampleStore(root, 0)
	require.NoError(t, err)

	wr, err := ss.GetWriter("out.csv")
	require.NoError(t, err)
	_, err = wr.Write([]byte("stale contents\n"))
	require.NoError(t, err)
	require.NoError(t, wr.Close())

	// a second writer truncates
	wr, err = ss.GetWriter("out.csv")
	require.NoError(t, err)
	_, err = wr.Write([]byte("x\n"))
	require.NoError(t, err)
	require.NoError(t, wr.Sync())
	require.NoError(t, wr.Close())

	data, err := os.ReadFile(filepath.Join(root, "out.csv"))
	require.NoError(t, err)
	require.Equal(t, "x\n", string(data))
}

func TestFileSampleStore_Errors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	// root exists as a regular file
	_, err := NewFileSampleStore(file, 0)
	require.Error(t, err)

	ss, err := NewFileSampleStore(dir, 0)
	require.NoError(t, err)

	_, err = ss.GetWriter(filepath.Join("missing", "out.csv"))
	require.Error(t, err)
}

func TestParseOpenFlags(t *testing.T) {
	flags, err := parseOpenFlags(nil)
	require.NoError(t, err)
	require.Equal(t, 0, flags)

	flags, err = parseOpenFlags([]string{"sync"})
	require.NoError(t, err)
	require.Equal(t, os.O_SYNC, flags)

	_, err = parseOpenFlags([]string{"direct"})
	require.Error(t, err)
}
