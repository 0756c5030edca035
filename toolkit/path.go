package toolkit

import (
	"path/filepath"
	"strings"
)

// JoinClean joins path elements and cleans the result, collapsing any ".."
// or "." segments — the one bit of path-handling the CLI's file loading
// actually needs.
func JoinClean(elem ...string) string {
	return filepath.Clean(filepath.Join(elem...))
}

// BaseNoExt returns the final path element with its extension stripped,
// e.g. "/tmp/input.json" -> "input".
func BaseNoExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
