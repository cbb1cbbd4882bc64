package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/skel/pkg/config"
	"github.com/arthur-debert/skel/pkg/core"
	"github.com/arthur-debert/skel/pkg/errors"
	"github.com/arthur-debert/skel/pkg/paths"
)

// loadSkeleton resolves the configuration path and merges both layers.
func loadSkeleton() (*core.Skeleton, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot determine working directory")
	}

	configPath := paths.ResolveConfigFile(workingDir, configFlag)
	return core.FromConfigFile(configPath)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the merged skeleton and its application order",
	Long: `Loads the per-project configuration and the shared skeleton it points at,
merges the two, and prints the resulting content table (in dependency
order), variables and tasks without touching the project directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		skeleton, err := loadSkeleton()
		if err != nil {
			return err
		}

		order, err := config.Calculate(skeleton.Content)
		if err != nil {
			return err
		}

		renderSkeleton(skeleton, order)
		return nil
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply the skeleton to the project directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.New(errors.ErrNotImplemented, "apply is not implemented yet; use plan to inspect the result")
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the project against the skeleton",
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.New(errors.ErrNotImplemented, "verify is not implemented yet; use plan to inspect the result")
	},
}
