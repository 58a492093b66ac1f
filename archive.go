package docpack

import (
	"context"
	"path/filepath"
)

// Plan is the resolved configuration for a single archiving run. It is
// computed once at startup and read-only afterwards.
type Plan struct {
	// RepoRoot is the absolute path of the repository top-level directory.
	RepoRoot string

	// RepoName is the base name of the repository root directory. It
	// becomes part of the archive file name, never part of entry names.
	RepoName string

	// SourceDir is the absolute path of the directory tree to archive.
	SourceDir string

	// OutDir is the absolute path of the directory the archive is
	// written to.
	OutDir string

	// Stamp is the filename prefix, normally an 8-digit date stamp.
	Stamp string

	// Excludes holds doublestar glob patterns matched against each
	// entry's slash-separated path relative to SourceDir.
	Excludes []string
}

// ArchivePath returns the full path of the archive file the plan
// produces: <OutDir>/<Stamp>_<RepoName>.zip.
func (p *Plan) ArchivePath() string {
	return filepath.Join(p.OutDir, p.Stamp+"_"+p.RepoName+".zip")
}

// Validate returns an error if the plan contains invalid fields.
func (p *Plan) Validate() error {
	if p.RepoName == "" {
		return Errorf(EINVALID, "plan repo name required")
	}
	if p.SourceDir == "" {
		return Errorf(EINVALID, "plan source directory required")
	}
	if p.OutDir == "" {
		return Errorf(EINVALID, "plan output directory required")
	}
	if p.Stamp == "" {
		return Errorf(EINVALID, "plan stamp required")
	}
	return nil
}

// Summary reports what a completed archiving run produced.
type Summary struct {
	// ArchivePath is the path of the written archive file.
	ArchivePath string

	// FilesAdded is the number of file entries written.
	FilesAdded int

	// DirsAdded is the number of empty-directory marker entries written.
	DirsAdded int
}

// RootFinder locates the top-level directory of the version-controlled
// project containing a path.
type RootFinder interface {
	// FindRoot returns the absolute repository root for start.
	// Returns ENOTFOUND if no repository can be discovered.
	FindRoot(ctx context.Context, start string) (string, error)
}

// Archiver writes a plan's source tree into its archive file.
type Archiver interface {
	Archive(ctx context.Context, plan *Plan) (*Summary, error)
}

// Verifier checks a written archive against the source tree it was
// produced from.
type Verifier interface {
	// Verify returns the number of file entries checked.
	// Returns ECONFLICT on the first content mismatch.
	Verify(ctx context.Context, archivePath, sourceDir string) (int, error)
}
