// Package docpack packages a repository's documentation directory tree
// into a timestamped zip archive for offline or local editing. It locates
// the repository root, resolves the docs directory, walks it in a stable
// order, and writes a deflate zip with repo-relative entry names,
// preserving empty directories and excluding OS-noise files.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., git/, zip/).
package docpack
