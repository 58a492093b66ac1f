package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/docpack"
)

// defaultDocsSubdir is the tree archived when --docs-dir is not given.
var defaultDocsSubdir = filepath.Join("export_data", "inspection_reports")

// resolvePlan turns parsed flags and a discovered repo root into the
// immutable per-run plan. The source directory must already exist and be
// a directory; the output directory is created later, just before
// writing.
func resolvePlan(cli *CLI, root string, now time.Time) (*docpack.Plan, error) {
	docsDir := cli.DocsDir
	if docsDir == "" {
		docsDir = filepath.Join(root, defaultDocsSubdir)
	}
	info, err := os.Stat(docsDir)
	if err != nil || !info.IsDir() {
		return nil, docpack.Errorf(docpack.ENOTFOUND, "docs folder not found: %s", docsDir)
	}

	outDir := cli.OutDir
	if outDir == "" {
		outDir = root
	}

	stamp := cli.Stamp
	if stamp == "" {
		stamp = docpack.DateStamp(now)
	}

	return &docpack.Plan{
		RepoRoot:  root,
		RepoName:  filepath.Base(root),
		SourceDir: docsDir,
		OutDir:    outDir,
		Stamp:     stamp,
		Excludes:  cli.Exclude,
	}, nil
}
