// Package paths provides centralized path handling for skel: the
// configuration file naming convention and lexical path normalization.
package paths

import (
	"os"
	"path/filepath"
)

// Configuration file and directory naming convention
const (
	// ProjectConfigFile is the per-project configuration file name
	ProjectConfigFile = ".skeleton.kdl"

	// SkeletonConfigFile is the configuration file inside a skeleton root
	SkeletonConfigFile = "skeleton.kdl"
)

// Normalize resolves path against from lexically: "." segments are
// dropped, ".." segments pop, and an absolute path discards from. The
// filesystem is never consulted.
func Normalize(from, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(from, path))
}

// ResolveConfigFile turns the --config flag value into the project
// configuration file path. An empty value means the working directory; a
// relative value is resolved against it; a directory gets the default
// .skeleton.kdl file name appended.
func ResolveConfigFile(workingDir, flag string) string {
	path := flag
	if path == "" {
		path = workingDir
	}

	path = Normalize(workingDir, path)

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, ProjectConfigFile)
	}

	return path
}
