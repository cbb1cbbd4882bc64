// Package core combines the two configuration layers into the final
// skeleton: the plan a future apply operation consumes.
package core

import (
	"path/filepath"

	"github.com/arthur-debert/skel/pkg/config"
	"github.com/arthur-debert/skel/pkg/logging"
	"github.com/arthur-debert/skel/pkg/paths"
	"github.com/arthur-debert/skel/pkg/types"
)

// Skeleton is the merged result of the shared and per-project layers.
// It is constructed once per invocation and not mutated afterwards.
type Skeleton struct {
	// Project is the project root content will be placed under.
	Project string

	// SkeletonPath is the shared-layer directory.
	SkeletonPath string

	// Content is the shared layer's content table, verbatim: the project
	// layer never defines content.
	Content map[string]types.Content

	// Variables are the shared layer's bindings overlaid with the project
	// layer's; the project wins on name collision.
	Variables map[string]interface{}

	// Tasks are merged the same way, with whole-task replacement: none of
	// a replaced shared task's steps survive.
	Tasks map[string]types.Task
}

// New returns an empty skeleton.
func New() *Skeleton {
	return &Skeleton{
		Content:   make(map[string]types.Content),
		Variables: make(map[string]interface{}),
		Tasks:     make(map[string]types.Task),
	}
}

// FromConfigFile loads the per-project layer from configFile, loads the
// shared layer it points at, and merges the two.
func FromConfigFile(configFile string) (*Skeleton, error) {
	logger := logging.GetLogger("core")

	projectCfg, err := config.ReadProjectConfig(configFile)
	if err != nil {
		return nil, err
	}

	skeletonCfg, err := config.ReadSkeletonConfig(filepath.Join(projectCfg.Skeleton, paths.SkeletonConfigFile))
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("project", projectCfg.Root).
		Str("skeleton", projectCfg.Skeleton).
		Msg("Merged configuration layers")

	return &Skeleton{
		Project:      projectCfg.Root,
		SkeletonPath: projectCfg.Skeleton,
		Content:      skeletonCfg.Content,
		Variables:    overlay(skeletonCfg.Variables, projectCfg.Variables),
		Tasks:        overlay(skeletonCfg.Tasks, projectCfg.Tasks),
	}, nil
}

// overlay unions two maps; entries from over replace matching keys in base.
// This is a flat override, not a deep merge.
func overlay[V any](base, over map[string]V) map[string]V {
	merged := make(map[string]V, len(base)+len(over))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range over {
		merged[key] = value
	}
	return merged
}
