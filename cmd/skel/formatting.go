package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/skel/pkg/core"
	"github.com/arthur-debert/skel/pkg/types"
)

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	// Only apply formatting if output is a terminal
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// renderSkeleton prints the merged skeleton: its paths, the content table
// in application order, the variable bindings and the task table.
func renderSkeleton(skeleton *core.Skeleton, order []types.Content) {
	fmt.Printf("%s %s\n", formatBold("project: "), skeleton.Project)
	fmt.Printf("%s %s\n", formatBold("skeleton:"), skeleton.SkeletonPath)

	fmt.Printf("\n%s\n", formatBold("CONTENT"))
	if len(order) == 0 {
		fmt.Println("  (none)")
	}
	for i, entry := range order {
		line := fmt.Sprintf("  %2d. %s -> %s", i+1, entry.Source, entry.Destination)
		if entry.Kind == types.KindTemplate {
			line += " (template)"
		}
		if len(entry.Dependencies) > 0 {
			line += " [after " + strings.Join(entry.Dependencies, ", ") + "]"
		}
		fmt.Println(line)
	}

	fmt.Printf("\n%s\n", formatBold("VARIABLES"))
	names := make([]string, 0, len(skeleton.Variables))
	for name := range skeleton.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		fmt.Println("  (none)")
	}
	for _, name := range names {
		value := skeleton.Variables[name]
		if value == nil {
			value = "null"
		}
		fmt.Printf("  %s = %v\n", name, value)
	}

	fmt.Printf("\n%s\n", formatBold("TASKS"))
	taskNames := make([]string, 0, len(skeleton.Tasks))
	for name := range skeleton.Tasks {
		taskNames = append(taskNames, name)
	}
	sort.Strings(taskNames)
	if len(taskNames) == 0 {
		fmt.Println("  (none)")
	}
	for _, name := range taskNames {
		task := skeleton.Tasks[name]
		fmt.Printf("  %s\n", name)
		for _, step := range task.Steps {
			fmt.Printf("    - %s\n", describeStep(step))
		}
	}
}

// describeStep renders one task step as a single line.
func describeStep(step types.TaskStep) string {
	switch s := step.(type) {
	case types.EnvStep:
		pairs := make([]string, 0, len(s.Vars))
		for name, value := range s.Vars {
			pairs = append(pairs, name+"="+value)
		}
		sort.Strings(pairs)
		return "env " + strings.Join(pairs, " ")
	case types.ExecStep:
		return strings.TrimSpace("exec " + s.Command + " " + strings.Join(s.Args, " "))
	case types.InvokeStep:
		return strings.TrimSpace("task " + s.Task + " " + strings.Join(s.Args, " "))
	default:
		return fmt.Sprintf("%v", step)
	}
}
