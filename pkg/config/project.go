package config

import (
	"path/filepath"

	"github.com/sblinch/kdl-go/document"

	"github.com/arthur-debert/skel/pkg/errors"
	"github.com/arthur-debert/skel/pkg/logging"
	"github.com/arthur-debert/skel/pkg/types"
)

// DefaultSkeletonDir is the skeleton location assumed when the project
// layer does not declare one, relative to the project root.
const DefaultSkeletonDir = ".skeleton"

// ProjectConfig is the per-project override layer: which project root and
// skeleton to use, plus variables and tasks that take precedence over the
// shared layer. The project layer never defines content.
type ProjectConfig struct {
	// Root is the project directory content will be placed under.
	Root string

	// Skeleton is the shared-layer directory.
	Skeleton string

	Variables map[string]interface{}
	Tasks     map[string]types.Task

	// IsDefault is set when the configuration file was absent and the
	// layer was built purely from path defaults.
	IsDefault bool
}

// ReadProjectConfig loads the per-project layer from a .skeleton.kdl file.
// A missing file degrades to defaults: root is the file's parent directory
// and skeleton is <root>/.skeleton.
func ReadProjectConfig(path string) (*ProjectConfig, error) {
	logger := logging.GetLogger("config.project")

	text, isDefault, err := readConfigText(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read project config %s", path)
	}

	doc, err := parseDocument(text)
	if err != nil {
		return nil, err
	}

	root, err := firstStringArg(doc, text, "root", func() (string, error) {
		return filepath.Dir(path), nil
	})
	if err != nil {
		return nil, err
	}

	skeleton, err := firstStringArg(doc, text, "skeleton", func() (string, error) {
		return filepath.Join(root, DefaultSkeletonDir), nil
	})
	if err != nil {
		return nil, err
	}

	variables, err := variablesFrom(doc, text)
	if err != nil {
		return nil, err
	}

	tasks, err := tasksFrom(doc, text)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Bool("default", isDefault).
		Int("tasks", len(tasks)).
		Int("variables", len(variables)).
		Msg("Loaded project layer")

	return &ProjectConfig{
		Root:      root,
		Skeleton:  skeleton,
		Variables: variables,
		Tasks:     tasks,
		IsDefault: isDefault,
	}, nil
}

// tasksFrom builds the task table from every top-level task node. The node
// must carry a string name argument; the node's children become the task's
// steps. A later task node with the same name replaces the earlier one.
func tasksFrom(doc *document.Document, docText string) (map[string]types.Task, error) {
	tasks := make(map[string]types.Task)

	for _, node := range doc.Nodes {
		if nodeName(node) != "task" {
			continue
		}

		name, err := nodeStringArg(node, docText)
		if err != nil {
			return nil, err
		}

		task, err := taskFromNodes(node.Children, name, docText)
		if err != nil {
			return nil, err
		}
		tasks[name] = task
	}

	return tasks, nil
}
