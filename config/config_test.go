package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)
	require.Equal(t, Default(), s)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, ioutil.WriteFile(path, []byte("MaxDepth: 64\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 64, s.MaxDepth)
	require.Equal(t, ">> ", s.Prompt)
	require.True(t, s.Color)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, ioutil.WriteFile(path, []byte("Depth: 3\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadNonPositiveDepth(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, ioutil.WriteFile(path, []byte("MaxDepth: 0\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default().MaxDepth, s.MaxDepth)
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	want := Settings{MaxDepth: 10, Prompt: "monkey> ", Color: false}
	require.NoError(t, Write(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
