package main_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/docpack/cmd/docpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: CLI Help and Discovery
//
// Users discover docpack capabilities through help output. Every flag is
// optional, so help is the only surface that explains the defaults.

func TestCLI_ShowsHelpWhenAsked(t *testing.T) {
	t.Parallel()

	// Given: a CLI instance
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: running with --help flag
	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	// Then: help is displayed without error
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "docpack")
	assert.Contains(t, stdout.String(), "docs-dir")
}

func TestCLI_RejectsUnknownFlags(t *testing.T) {
	t.Parallel()

	// Given: a CLI instance
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: running with a flag that does not exist
	err := m.Run(context.Background(), []string{"--frobnicate"}, &stdout, &stderr)

	// Then: an error is returned
	assert.Error(t, err)
}

// Story: Archiving a Repository Docs Folder
//
// With no flags, docpack finds the repo root from the working directory,
// zips the default docs folder into the root, and reports what it added.
// These tests build a fake repository (a .git directory is enough for
// root discovery) and run the real binary entry point against it.
//
// t.Chdir is incompatible with t.Parallel, so the run tests below are
// sequential.

// testRepo creates a fake repository with the default docs tree and
// returns its path.
func testRepo(t *testing.T) string {
	t.Helper()

	repo := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	docs := filepath.Join(repo, "export_data", "inspection_reports")
	require.NoError(t, os.MkdirAll(filepath.Join(docs, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(docs, "x.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(docs, "__pycache__"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(docs, "__pycache__", "y.txt"), []byte("cached"), 0o644))

	return repo
}

// zipFiles lists .zip files directly under dir.
func zipFiles(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var zips []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".zip") {
			zips = append(zips, e.Name())
		}
	}
	return zips
}

func TestCLI_ArchivesDefaultDocsFolder(t *testing.T) {
	repo := testRepo(t)
	t.Chdir(repo)

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--stamp", "20250108"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Created: ")
	assert.Contains(t, stdout.String(), "Added files: 1, empty dirs also kept: 1")

	zips := zipFiles(t, repo)
	require.Len(t, zips, 1)
	assert.Equal(t, "20250108_"+filepath.Base(repo)+".zip", zips[0])
}

func TestCLI_SameStampOverwritesPreviousArchive(t *testing.T) {
	repo := testRepo(t)
	t.Chdir(repo)

	m := main.NewMain()

	for i := 0; i < 2; i++ {
		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"--stamp", "20250108"}, &stdout, &stderr)
		require.NoError(t, err, "run %d", i)
	}

	assert.Len(t, zipFiles(t, repo), 1)
}

func TestCLI_VerifyReportsCheckedEntries(t *testing.T) {
	repo := testRepo(t)
	t.Chdir(repo)

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--stamp", "20250108", "--verify"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Verified: 1 entries match the source")
}

func TestCLI_HonorsDocsDirAndOutDirOverrides(t *testing.T) {
	repo := testRepo(t)
	t.Chdir(repo)

	handbook := filepath.Join(repo, "handbook")
	require.NoError(t, os.MkdirAll(handbook, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(handbook, "a.md"), []byte("a"), 0o644))
	out := filepath.Join(repo, "dist", "nested")

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		"--docs-dir", handbook,
		"--out-dir", out,
		"--stamp", "20250108",
	}, &stdout, &stderr)

	require.NoError(t, err)
	// The output directory is created on demand, ancestors included.
	assert.Len(t, zipFiles(t, out), 1)
}

func TestCLI_FailsWhenDocsFolderMissing(t *testing.T) {
	repo := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))
	t.Chdir(repo)

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "docs folder not found")
	// No archive is left behind on failure before writing.
	assert.Empty(t, zipFiles(t, repo))
}

func TestCLI_ExcludeGlobFiltersEntries(t *testing.T) {
	repo := testRepo(t)
	t.Chdir(repo)

	docs := filepath.Join(repo, "export_data", "inspection_reports")
	require.NoError(t, os.MkdirAll(filepath.Join(docs, "drafts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(docs, "drafts", "wip.md"), []byte("wip"), 0o644))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		"--stamp", "20250108",
		"--exclude", "drafts/**",
	}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), fmt.Sprintf("Added files: %d", 1))
}
