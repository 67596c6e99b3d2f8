package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylebrw/slang"
)

func TestInitMacroFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".slang.yaml")
	require.NoError(t, initMacroFile(path))

	// the generated starter set must load cleanly
	store, err := slang.LoadMacroFiles(path)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())

	assert.Equal(t, "hello, you!", slang.Expand("greet(you)", store))
}

func TestExpandStream(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("greet(stream) end"), 0o644))

	store, err := slang.BuildMacroStore([]string{"greet(name) = hello :[name]"})
	require.NoError(t, err)

	require.NoError(t, expandStream(store, in, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "hello stream end", string(data))
}

func TestExpandStreamMissingInput(t *testing.T) {
	store, err := slang.BuildMacroStore(nil)
	require.NoError(t, err)

	err = expandStream(store, filepath.Join(t.TempDir(), "missing.txt"), "")
	assert.Error(t, err)
}
