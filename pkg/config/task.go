package config

import (
	"github.com/sblinch/kdl-go/document"

	"github.com/arthur-debert/skel/pkg/errors"
	"github.com/arthur-debert/skel/pkg/types"
)

// taskFromNodes parses a task body into a Task. Each node becomes exactly
// one step in encounter order:
//
//	env name=value ...   named entries become a SetEnv mapping
//	exec <cmd> <arg>...  positional entries become a command invocation
//	task <name> <arg>... positional entries become a task invocation
//
// Unknown node names are ignored as a forward-compatible extension point.
func taskFromNodes(nodes []*document.Node, name, docText string) (types.Task, error) {
	task := types.Task{Name: name}

	for _, node := range nodes {
		switch nodeName(node) {
		case "env":
			task.Steps = append(task.Steps, types.EnvStep{Vars: propertyStrings(node)})
		case "exec":
			command, args, err := commandShape(node, docText)
			if err != nil {
				return types.Task{}, err
			}
			task.Steps = append(task.Steps, types.ExecStep{Command: command, Args: args})
		case "task":
			target, args, err := commandShape(node, docText)
			if err != nil {
				return types.Task{}, err
			}
			task.Steps = append(task.Steps, types.InvokeStep{Task: target, Args: args})
		}
	}

	return task, nil
}

// commandShape reads the shared shape of exec and task nodes: the first
// positional entry must be a string, every subsequent positional entry is
// stringified into the argument list, named entries are ignored.
func commandShape(node *document.Node, docText string) (string, []string, error) {
	if len(node.Arguments) == 0 {
		return "", nil, errors.NewConfig(errors.ErrMissingArgument, nodeName(node), docText, "missing command argument")
	}

	command, ok := asString(node.Arguments[0])
	if !ok {
		return "", nil, errors.NewConfig(errors.ErrInvalidString, nodeName(node), docText, "command must be a string")
	}

	args := make([]string, 0, len(node.Arguments)-1)
	for _, arg := range node.Arguments[1:] {
		args = append(args, valueText(arg))
	}

	return command, args, nil
}
