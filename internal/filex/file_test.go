package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureAppDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir, err := EnsureAppDir("roadcase-test")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "roadcase-test"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEnsureAppDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	first, err := EnsureAppDir("roadcase-test")
	require.NoError(t, err)
	second, err := EnsureAppDir("roadcase-test")
	require.NoError(t, err)
	require.Equal(t, first, second)
}
