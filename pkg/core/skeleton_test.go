package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/skel/pkg/core"
	"github.com/arthur-debert/skel/pkg/types"
)

func TestNewIsEmpty(t *testing.T) {
	skeleton := core.New()
	assert.Equal(t, "", skeleton.Project)
	assert.Equal(t, "", skeleton.SkeletonPath)
	assert.Empty(t, skeleton.Content)
	assert.Empty(t, skeleton.Variables)
	assert.Empty(t, skeleton.Tasks)
}

func TestFromConfigFileDefaults(t *testing.T) {
	dir := t.TempDir()

	skeleton, err := core.FromConfigFile(filepath.Join(dir, ".skeleton.kdl"))
	require.NoError(t, err)

	assert.Equal(t, dir, skeleton.Project)
	assert.Equal(t, filepath.Join(dir, ".skeleton"), skeleton.SkeletonPath)
	assert.Empty(t, skeleton.Content)
	assert.Empty(t, skeleton.Variables)
	assert.Empty(t, skeleton.Tasks)
}

func TestFromConfigFileMergesLayers(t *testing.T) {
	projectDir := t.TempDir()
	skeletonRoot := t.TempDir()

	// shared layer: content tree, default variables and tasks
	require.NoError(t, os.Mkdir(filepath.Join(skeletonRoot, "content"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(skeletonRoot, "content", "dot_bashrc"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(skeletonRoot, "skeleton.kdl"), []byte(`variables {
	color "red"
	shared "kept"
}
task "build" {
	exec "cargo" "build"
}
task "deploy" {
	env region="us"
	exec "ssh" "host"
	task "cleanup"
}`), 0644))

	// project layer points at the shared layer and overrides
	configFile := filepath.Join(projectDir, ".skeleton.kdl")
	require.NoError(t, os.WriteFile(configFile, []byte(`skeleton "`+skeletonRoot+`"
variables {
	color "blue"
	extra 1
}
task "build" {
	exec "make"
}`), 0644))

	skeleton, err := core.FromConfigFile(configFile)
	require.NoError(t, err)

	assert.Equal(t, projectDir, skeleton.Project)
	assert.Equal(t, skeletonRoot, skeleton.SkeletonPath)

	// content comes only from the shared layer
	require.Contains(t, skeleton.Content, "dot_bashrc")
	assert.Equal(t, ".bashrc", skeleton.Content["dot_bashrc"].Destination)

	// project wins on variable collision, unrelated names survive
	assert.Equal(t, "blue", skeleton.Variables["color"])
	assert.Equal(t, "kept", skeleton.Variables["shared"])
	assert.EqualValues(t, 1, skeleton.Variables["extra"])

	// project task replaces the shared task wholesale
	require.Contains(t, skeleton.Tasks, "build")
	assert.Equal(t, types.Task{
		Name:  "build",
		Steps: []types.TaskStep{types.ExecStep{Command: "make", Args: []string{}}},
	}, skeleton.Tasks["build"])

	// shared-only tasks survive intact
	require.Contains(t, skeleton.Tasks, "deploy")
	assert.Equal(t, types.Task{
		Name: "deploy",
		Steps: []types.TaskStep{
			types.EnvStep{Vars: map[string]string{"region": "us"}},
			types.ExecStep{Command: "ssh", Args: []string{"host"}},
			types.InvokeStep{Task: "cleanup", Args: []string{}},
		},
	}, skeleton.Tasks["deploy"])
}

func TestFromConfigFilePropagatesLayerErrors(t *testing.T) {
	projectDir := t.TempDir()
	skeletonRoot := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(skeletonRoot, "skeleton.kdl"), []byte(`content "missing"`), 0644))

	configFile := filepath.Join(projectDir, ".skeleton.kdl")
	require.NoError(t, os.WriteFile(configFile, []byte(`skeleton "`+skeletonRoot+`"`), 0644))

	_, err := core.FromConfigFile(configFile)
	require.Error(t, err)
}
