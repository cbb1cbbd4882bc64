package config

import (
	"path/filepath"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortContentKeys sorts content keys into the deterministic base order used
// everywhere a content table is iterated: by parent directory first, then
// file name, each component compared with Unicode collation under the root
// locale. This order is an observable contract of the resolver's output.
func sortContentKeys(keys []string) {
	collator := collate.New(language.Und)
	sort.SliceStable(keys, func(i, j int) bool {
		dirI, dirJ := filepath.Dir(keys[i]), filepath.Dir(keys[j])
		if cmp := collator.CompareString(dirI, dirJ); cmp != 0 {
			return cmp < 0
		}
		return collator.CompareString(filepath.Base(keys[i]), filepath.Base(keys[j])) < 0
	})
}
