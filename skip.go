package docpack

import (
	"path/filepath"
	"strings"
)

// skipNames are OS-generated artifact files that never belong in an
// archive.
var skipNames = map[string]struct{}{
	".DS_Store": {},
	"Thumbs.db": {},
}

// cacheDirName marks interpreter cache directories; any path containing
// this component is skipped.
const cacheDirName = "__pycache__"

// ShouldSkip reports whether a filesystem path should be left out of an
// archive. The check is applied independently to every entry during a
// walk rather than pruning subtrees, so files inside a skipped directory
// are caught by their own path components.
func ShouldSkip(path string) bool {
	if _, ok := skipNames[filepath.Base(path)]; ok {
		return true
	}
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == cacheDirName {
			return true
		}
	}
	return false
}
