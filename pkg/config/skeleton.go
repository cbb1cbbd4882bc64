package config

import (
	"path/filepath"

	"github.com/sblinch/kdl-go/document"

	"github.com/arthur-debert/skel/pkg/errors"
	"github.com/arthur-debert/skel/pkg/logging"
	"github.com/arthur-debert/skel/pkg/types"
)

// ContentDir is the directory next to skeleton.kdl that holds the shared
// layer's content tree.
const ContentDir = "content"

// SkeletonConfig is the shared skeleton layer: the content table seeded
// from the content tree and refined by content nodes, plus default tasks
// and variables.
type SkeletonConfig struct {
	// Root is the content root, <config parent>/content.
	Root string

	// Content maps root-relative source paths to their entries.
	Content map[string]types.Content

	Tasks     map[string]types.Task
	Variables map[string]interface{}

	// IsDefault is set when the configuration file was absent.
	IsDefault bool
}

// ReadSkeletonConfig loads the shared layer from a skeleton.kdl file.
//
// The content table is seeded implicitly by scanning the content root;
// content nodes may then override an entry's destination and declare
// ordering dependencies. A content node that names a source absent from
// the scan is a MISSING_SOURCE error, and every declared dependency must
// itself name a known source.
func ReadSkeletonConfig(path string) (*SkeletonConfig, error) {
	logger := logging.GetLogger("config.skeleton")

	text, isDefault, err := readConfigText(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read skeleton config %s", path)
	}

	doc, err := parseDocument(text)
	if err != nil {
		return nil, err
	}

	root := filepath.Join(filepath.Dir(path), ContentDir)

	content, err := contentTable(root, doc, text)
	if err != nil {
		return nil, err
	}

	tasks, err := tasksFrom(doc, text)
	if err != nil {
		return nil, err
	}

	variables, err := variablesFrom(doc, text)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Bool("default", isDefault).
		Int("content", len(content)).
		Int("tasks", len(tasks)).
		Int("variables", len(variables)).
		Msg("Loaded skeleton layer")

	return &SkeletonConfig{
		Root:      root,
		Content:   content,
		Tasks:     tasks,
		Variables: variables,
		IsDefault: isDefault,
	}, nil
}

// contentTable scans the content root and applies the document's content
// override nodes, then validates the dependency references.
func contentTable(root string, doc *document.Document, docText string) (map[string]types.Content, error) {
	sources, err := ReadTree(root)
	if err != nil {
		return nil, err
	}

	content := make(map[string]types.Content, len(sources))
	for _, source := range sources {
		entry, err := types.NewContent(source, "")
		if err != nil {
			return nil, err
		}
		content[source] = entry
	}

	for _, node := range doc.Nodes {
		if nodeName(node) != "content" {
			continue
		}

		source, err := nodeStringArg(node, docText)
		if err != nil {
			return nil, err
		}

		entry, ok := content[source]
		if !ok {
			return nil, errors.NewConfig(errors.ErrMissingSource, "content", docText, "source "+source+" does not exist under the content root")
		}

		for _, child := range node.Children {
			switch nodeName(child) {
			case "destination":
				destination, err := nodeStringArg(child, docText)
				if err != nil {
					return nil, err
				}
				entry.Destination = destination
			case "depends_on":
				for _, arg := range child.Arguments {
					dep, ok := asString(arg)
					if !ok {
						return nil, errors.NewConfig(errors.ErrInvalidString, "depends_on", docText, "dependency must be a string")
					}
					entry.Dependencies = append(entry.Dependencies, dep)
				}
			}
		}

		content[source] = entry
	}

	// dependencies may only reference known content keys; catching this at
	// load time keeps Calculate free of lookup failures
	for source, entry := range content {
		for _, dep := range entry.Dependencies {
			if _, ok := content[dep]; !ok {
				return nil, errors.Newf(errors.ErrUnknownDependency, "content %q depends on unknown source %q", source, dep).
					WithDetail("from", source).
					WithDetail("to", dep)
			}
		}
	}

	return content, nil
}
