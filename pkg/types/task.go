package types

// Task is a named, ordered list of steps interpreted by a task runner.
// Tasks are keyed by name; when the project layer defines a task with the
// same name as a shared-layer task, the project task replaces it entirely.
type Task struct {
	Name  string
	Steps []TaskStep
}

// TaskStep is one of EnvStep, ExecStep or InvokeStep.
type TaskStep interface {
	step()
}

// EnvStep sets one or more environment variables for subsequent steps.
// Later EnvSteps overwrite earlier ones for the same name.
type EnvStep struct {
	Vars map[string]string
}

// ExecStep runs an external command with arguments.
type ExecStep struct {
	Command string
	Args    []string
}

// InvokeStep runs another named task. The name is resolved by the task
// runner at execution time, not validated at load time.
type InvokeStep struct {
	Task string
	Args []string
}

func (EnvStep) step()    {}
func (ExecStep) step()   {}
func (InvokeStep) step() {}
