package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"csv-differ/core/config"
	"csv-differ/core/fieldspec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var flagNames = []string{"delimiter", "output-dir", "atomic", "duplicates", "publish"}

// resetFlags restores RootCmd flags after a test, since they are package globals.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		for _, name := range flagNames {
			f := RootCmd.Flags().Lookup(name)
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		RootCmd.SetArgs(nil)
	})
}

func TestRootCmd_EndToEnd(t *testing.T) {
	resetFlags(t)
	t.Setenv("LOG_LEVEL", "error")
	dir := t.TempDir()
	left := filepath.Join(dir, "file1.csv")
	right := filepath.Join(dir, "file2.csv")
	require.NoError(t, os.WriteFile(left, []byte("1,foo\n2,bar\n"), 0o644))
	require.NoError(t, os.WriteFile(right, []byte("2,bar\n3,baz\n"), 0o644))

	RootCmd.SetArgs([]string{left, right, "1:1", "--output-dir", dir})
	require.NoError(t, RootCmd.Execute())

	read := func(name string) string {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		return string(data)
	}
	assert.Equal(t, "1,foo\n", read("a-b.csv"))
	assert.Equal(t, "3,baz\n", read("b-a.csv"))
	assert.Equal(t, "2,bar,2,bar\n", read("intersect.csv"))
}

func TestRootCmd_OutputFields(t *testing.T) {
	resetFlags(t)
	t.Setenv("LOG_LEVEL", "error")
	dir := t.TempDir()
	left := filepath.Join(dir, "file1.csv")
	right := filepath.Join(dir, "file2.csv")
	require.NoError(t, os.WriteFile(left, []byte("k;x;y\n"), 0o644))
	require.NoError(t, os.WriteFile(right, []byte("k;p;q\n"), 0o644))

	RootCmd.SetArgs([]string{left, right, "1:1", "2:1", "-o", dir, "-d", ";"})
	require.NoError(t, RootCmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "intersect.csv"))
	require.NoError(t, err)
	assert.Equal(t, "x;k\n", string(data))
}

func TestRootCmd_BadCheckField(t *testing.T) {
	resetFlags(t)
	t.Setenv("LOG_LEVEL", "error")
	dir := t.TempDir()

	RootCmd.SetArgs([]string{"a.csv", "b.csv", "1,2,3", "--output-dir", dir})
	err := RootCmd.Execute()
	assert.ErrorIs(t, err, fieldspec.ErrBadFormat)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestRootCmd_ArgCount(t *testing.T) {
	resetFlags(t)

	RootCmd.SetArgs([]string{"a.csv", "b.csv"})
	assert.Error(t, RootCmd.Execute())
}

func TestRootCmd_UnknownDuplicatePolicy(t *testing.T) {
	resetFlags(t)
	t.Setenv("LOG_LEVEL", "error")

	RootCmd.SetArgs([]string{"a.csv", "b.csv", "1:1", "--duplicates", "merge"})
	err := RootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown duplicate policy")
}

func TestApplyFlags(t *testing.T) {
	resetFlags(t)

	require.NoError(t, RootCmd.Flags().Set("delimiter", ";"))
	require.NoError(t, RootCmd.Flags().Set("atomic", "true"))

	cfg := config.DiffConfig{Delimiter: ",", OutputDir: "/srv/out", Duplicates: "last"}
	applyFlags(RootCmd, &cfg)

	assert.Equal(t, ";", cfg.Delimiter)
	assert.True(t, cfg.Atomic)
	// untouched flags keep the configured values
	assert.Equal(t, "/srv/out", cfg.OutputDir)
	assert.Equal(t, "last", cfg.Duplicates)
	assert.False(t, cfg.Publish)
}
