package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInputs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("second"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("first"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("skip"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o700))

	single := filepath.Join(t.TempDir(), "march.dat")
	require.NoError(t, os.WriteFile(single, []byte("explicit"), 0o600))

	inputs, err := ReadInputs([]string{dir, single, StdinName}, strings.NewReader("piped"))
	require.NoError(t, err)
	require.Len(t, inputs, 4)

	assert.Equal(t, "a.txt", inputs[0].Name)
	assert.Equal(t, "first", inputs[0].Text)
	assert.Equal(t, "b.txt", inputs[1].Name)
	assert.Equal(t, "march.dat", inputs[2].Name, "explicit files are read whatever their extension")
	assert.Equal(t, "stdin", inputs[3].Name)
	assert.Equal(t, "piped", inputs[3].Text)
}

func TestReadInputs_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadInputs([]string{filepath.Join(t.TempDir(), "nope.txt")}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to access")
	})

	t.Run("stdin twice", func(t *testing.T) {
		_, err := ReadInputs([]string{StdinName, StdinName}, strings.NewReader("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "more than once")
	})
}
