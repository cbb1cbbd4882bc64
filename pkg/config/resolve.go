package config

import (
	"strings"

	"github.com/arthur-debert/skel/pkg/errors"
	"github.com/arthur-debert/skel/pkg/types"
)

// Calculate produces the application order for a content table: every entry
// exactly once, each appearing after all entries in its dependency list.
//
// The order is deterministic: keys are repeatedly scanned in the collated
// (parent directory, file name) base order and every key whose outstanding
// dependencies are exhausted is emitted in scan order. The tie-break among
// concurrently-ready keys therefore always follows the base order, never
// the table's insertion or iteration order.
func Calculate(content map[string]types.Content) ([]types.Content, error) {
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sortContentKeys(keys)

	// outstanding holds a live copy of each key's dependency list;
	// dependents holds the reverse edges
	outstanding := make(map[string][]string, len(keys))
	dependents := make(map[string][]string, len(keys))
	for _, key := range keys {
		outstanding[key] = append([]string(nil), content[key].Dependencies...)
	}
	for _, key := range keys {
		for _, dep := range content[key].Dependencies {
			if _, ok := content[dep]; !ok {
				return nil, errors.Newf(errors.ErrUnknownDependency, "content %q depends on unknown source %q", key, dep).
					WithDetail("from", key).
					WithDetail("to", dep)
			}
			dependents[dep] = append(dependents[dep], key)
		}
	}

	result := make([]types.Content, 0, len(keys))
	remaining := keys
	for len(remaining) > 0 {
		var held []string
		for _, key := range remaining {
			if len(outstanding[key]) > 0 {
				held = append(held, key)
				continue
			}

			result = append(result, content[key])
			for _, dependent := range dependents[key] {
				outstanding[dependent] = removeKey(outstanding[dependent], key)
			}
		}

		if len(held) == len(remaining) {
			return nil, errors.Newf(errors.ErrCycleDetected, "dependency cycle among: %s", strings.Join(held, ", ")).
				WithDetail("remaining", held)
		}
		remaining = held
	}

	return result, nil
}

func removeKey(keys []string, key string) []string {
	filtered := keys[:0]
	for _, k := range keys {
		if k != key {
			filtered = append(filtered, k)
		}
	}
	return filtered
}

// Calculate resolves the shared layer's content table into its application
// order. See the package-level Calculate.
func (c *SkeletonConfig) Calculate() ([]types.Content, error) {
	return Calculate(c.Content)
}
