package dsymup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Hack-Nocturne/dsymup/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolvePaths_OrderAndAbsolute(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	cfg := UploadConfig{
		DSYMPath:       strPtr("single.zip"),
		ContextZipPath: strPtr("/ctx/App.dSYM.zip"),
		DSYMPaths:      []string{"list/b.zip", "list/a.zip", "/abs/c.zip"},
	}

	paths, err := cfg.ResolvePaths()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(wd, "single.zip"),
		filepath.Clean("/ctx/App.dSYM.zip"),
		filepath.Join(wd, "list/b.zip"),
		filepath.Join(wd, "list/a.zip"),
		filepath.Clean("/abs/c.zip"),
	}, paths)
}

func TestResolvePaths_SkipsAbsentSources(t *testing.T) {
	paths, err := (&UploadConfig{}).ResolvePaths()
	require.NoError(t, err)
	assert.Empty(t, paths)

	paths, err = (&UploadConfig{DSYMPaths: []string{"/x.zip", "/x.zip"}}).ResolvePaths()
	require.NoError(t, err)
	assert.Equal(t, []string{"/x.zip", "/x.zip"}, paths, "duplicates are kept")
}

func TestResolvePaths_Globs(t *testing.T) {
	dir := t.TempDir()
	b := touch(t, filepath.Join(dir, "build", "arm64", "B.dSYM.zip"), "b")
	a := touch(t, filepath.Join(dir, "build", "x86_64", "A.dSYM.zip"), "a")
	touch(t, filepath.Join(dir, "build", "notes.txt"), "n")
	touch(t, filepath.Join(dir, "build", "._A.dSYM.zip"), "apple double")
	touch(t, filepath.Join(dir, "build", "__MACOSX", "A.dSYM.zip"), "resource fork")
	touch(t, filepath.Join(dir, "build", "arm64", ".DS_Store"), "finder")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "build", "Dir.dSYM.zip"), 0o755))

	single := touch(t, filepath.Join(dir, "single.zip"), "s")
	cfg := UploadConfig{
		DSYMPath:  &single,
		DSYMGlobs: []string{filepath.Join(dir, "build", "**", "*.dSYM.zip")},
	}

	paths, err := cfg.ResolvePaths()
	require.NoError(t, err)
	assert.Equal(t, []string{single, b, a}, paths)
}

func TestResolvePaths_RelativeGlobIgnoresMacOSXFolder(t *testing.T) {
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	touch(t, filepath.Join("build", "App.dSYM.zip"), "app")
	touch(t, filepath.Join("build", "__MACOSX", "App.dSYM.zip"), "resource fork")

	paths, err := (&UploadConfig{DSYMGlobs: []string{"build/**/*.zip"}}).ResolvePaths()
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(wd, "build", "App.dSYM.zip")}, paths)
}

func TestResolvePaths_EmptyEntry(t *testing.T) {
	cases := []struct {
		name   string
		cfg    UploadConfig
		option string
	}{
		{name: "single path", cfg: UploadConfig{DSYMPath: strPtr("")}, option: "dsym_path"},
		{name: "context zip", cfg: UploadConfig{ContextZipPath: strPtr("  ")}, option: "dsym_zip_path"},
		{name: "list entry", cfg: UploadConfig{DSYMPaths: []string{"a.zip", ""}}, option: "dsym_paths"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.cfg.ResolvePaths()
			var cfgErr *types.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.option, cfgErr.Option)
			assert.Contains(t, err.Error(), "empty path")
		})
	}
}

func TestResolvePaths_GlobWithoutMatches(t *testing.T) {
	cfg := UploadConfig{DSYMGlobs: []string{filepath.Join(t.TempDir(), "*.zip")}}

	paths, err := cfg.ResolvePaths()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestResolvePaths_BadGlob(t *testing.T) {
	cfg := UploadConfig{DSYMGlobs: []string{"build/[.zip"}}

	_, err := cfg.ResolvePaths()
	var cfgErr *types.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "dsym_globs", cfgErr.Option)
}

func TestValidatePaths(t *testing.T) {
	dir := t.TempDir()
	first := touch(t, filepath.Join(dir, "first.zip"), "1")
	missing := filepath.Join(dir, "missing.zip")
	last := touch(t, filepath.Join(dir, "last.zip"), "3")

	require.NoError(t, ValidatePaths(nil))
	require.NoError(t, ValidatePaths([]string{first, last}))

	err := ValidatePaths([]string{first, missing, last})
	var missingErr *types.MissingFileError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, missing, missingErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), missing)
}

func TestValidatePaths_Directory(t *testing.T) {
	bundle := filepath.Join(t.TempDir(), "App.dSYM")
	require.NoError(t, os.MkdirAll(bundle, 0o755))

	err := ValidatePaths([]string{bundle})
	var missingErr *types.MissingFileError
	require.ErrorAs(t, err, &missingErr)
	assert.ErrorIs(t, err, types.ErrNotRegularFile)
}
