// Package zip writes and verifies documentation archives using the
// standard zip format with deflate compression.
package zip

import (
	"archive/zip"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/docpack"
)

// Ensure Archiver implements docpack.Archiver at compile time.
var _ docpack.Archiver = (*Archiver)(nil)

// Archiver writes a source tree into a deflate zip archive. Entry names
// are slash-separated paths relative to the source directory; empty
// directories become zero-length entries with a trailing slash.
type Archiver struct{}

// NewArchiver creates a new Archiver.
func NewArchiver() *Archiver {
	return &Archiver{}
}

// Archive writes plan.SourceDir into plan.ArchivePath(). Any existing
// file at that path is overwritten. Entries are written in lexicographic
// order of their full paths, so repeated runs over an unchanged tree
// produce identical archives. A write failure aborts the run and may
// leave an incomplete archive behind.
func (a *Archiver) Archive(ctx context.Context, plan *docpack.Plan) (*docpack.Summary, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	// Collect before creating the archive file so the archive never
	// includes itself when the output directory sits under the source.
	paths, err := collectPaths(plan.SourceDir)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(plan.ArchivePath())
	if err != nil {
		return nil, err
	}

	zw := zip.NewWriter(f)
	summary := &docpack.Summary{ArchivePath: plan.ArchivePath()}
	werr := writeEntries(zw, plan, paths, summary)

	// Close on every exit path so the central directory is finalized
	// even when a write failed mid-tree.
	cerr := zw.Close()
	ferr := f.Close()
	switch {
	case werr != nil:
		return nil, werr
	case cerr != nil:
		return nil, cerr
	case ferr != nil:
		return nil, ferr
	}

	return summary, nil
}

func writeEntries(zw *zip.Writer, plan *docpack.Plan, paths []string, summary *docpack.Summary) error {
	for _, path := range paths {
		if docpack.ShouldSkip(path) {
			continue
		}

		rel, err := filepath.Rel(plan.SourceDir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		if excluded(plan.Excludes, name) {
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return err
			}
			// Only raw-empty directories get a marker entry;
			// non-empty ones are implied by their files.
			if len(entries) == 0 {
				if _, err := zw.Create(name + "/"); err != nil {
					return err
				}
				summary.DirsAdded++
			}
			continue
		}

		if !info.Mode().IsRegular() {
			continue
		}

		if err := addFile(zw, path, name); err != nil {
			return err
		}
		summary.FilesAdded++
	}

	return nil
}

func addFile(zw *zip.Writer, path, name string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := zw.Create(name)
	if err != nil {
		return err
	}

	_, err = io.Copy(dst, src)
	return err
}

// collectPaths returns every entry under root (root itself excluded)
// sorted lexicographically by full path string.
func collectPaths(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func excluded(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
