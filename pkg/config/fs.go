package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ScanExcludeDir is pruned from the content scan wherever it appears.
const ScanExcludeDir = "node_modules"

// readConfigText reads a configuration file. A missing file is not an
// error: it yields empty text and isDefault=true so the layer loads with
// pure defaults. Any other failure is surfaced with its cause.
func readConfigText(path string) (text string, isDefault bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", true, nil
		}
		return "", false, err
	}
	return string(data), false, nil
}

// ReadTree lists every regular file under root as a root-relative path,
// skipping any component that starts with "." and any component named
// node_modules. The walk is iterative; the result is re-sorted into
// collated (parent directory, file name) order so traversal order never
// leaks into the output.
func ReadTree(root string) ([]string, error) {
	var result []string

	// relative paths of directories still to visit; "" is the root itself
	stack := []string{""}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(filepath.Join(root, dir))
		if err != nil {
			// an unreadable directory contributes nothing
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") || name == ScanExcludeDir {
				continue
			}

			rel := name
			if dir != "" {
				rel = filepath.Join(dir, name)
			}

			if entry.IsDir() {
				stack = append(stack, rel)
			} else if entry.Type().IsRegular() {
				result = append(result, rel)
			}
		}
	}

	sortContentKeys(result)
	return result, nil
}
