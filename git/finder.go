// Package git discovers repository roots using the git binary, with a
// filesystem fallback when git is unavailable.
package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docpack"
)

// Ensure Finder implements docpack.RootFinder at compile time.
var _ docpack.RootFinder = (*Finder)(nil)

// Finder locates the top-level directory of the repository containing a
// path. It asks `git rev-parse --show-toplevel` first and falls back to
// walking ancestor directories looking for a .git entry.
type Finder struct {
	gitPath string
}

// Option configures a Finder.
type Option func(*Finder)

// WithGitPath overrides the git executable used for the subprocess probe.
func WithGitPath(path string) Option {
	return func(f *Finder) {
		f.gitPath = path
	}
}

// NewFinder creates a new Finder with defaults.
func NewFinder(opts ...Option) *Finder {
	f := &Finder{gitPath: "git"}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FindRoot returns the absolute repository root for start. Any failure of
// the git probe (binary missing, non-zero exit) triggers the ancestor
// walk; both paths failing returns ENOTFOUND.
func (f *Finder) FindRoot(ctx context.Context, start string) (string, error) {
	if root, err := f.gitTopLevel(ctx, start); err == nil {
		return root, nil
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for dir := abs; ; {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", docpack.Errorf(docpack.ENOTFOUND, "could not find repo root (no git and no .git folder found above %s)", abs)
}

func (f *Finder) gitTopLevel(ctx context.Context, start string) (string, error) {
	cmd := exec.CommandContext(ctx, f.gitPath, "rev-parse", "--show-toplevel")
	cmd.Dir = start
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", docpack.Errorf(docpack.ENOTFOUND, "git returned an empty toplevel")
	}
	return filepath.Abs(root)
}
