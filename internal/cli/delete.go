package cli

import (
	"github.com/appforge-labs/appforge/internal/generator"
	"github.com/appforge-labs/appforge/internal/generators"
	"github.com/spf13/cobra"
)

var (
	deleteDir string
	deleteYes bool
)

func init() {
	deleteCmd.PersistentFlags().StringVar(&deleteDir, "dir", ".", "Project directory")
	deleteCmd.PersistentFlags().BoolVarP(&deleteYes, "yes", "y", false, "Skip confirmation")
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.AddCommand(deleteActionCmd)
	deleteCmd.AddCommand(deleteWebAssetsCmd)
	deleteCmd.AddCommand(deleteCICmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove a component from a project",
}

var deleteActionCmd = &cobra.Command{
	Use:   "action [name]",
	Short: "Remove an action, its source and its test",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := generator.Options{SkipPrompt: deleteYes}
		if len(args) == 1 {
			opts.ActionName = args[0]
		}
		return runGenerator(cmd, deleteDir, generators.DeleteAction, opts, false)
	},
}

var deleteWebAssetsCmd = &cobra.Command{
	Use:   "web-assets",
	Short: "Remove the web UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerator(cmd, deleteDir, generators.DeleteWebAssets, generator.Options{SkipPrompt: deleteYes}, false)
	},
}

var deleteCICmd = &cobra.Command{
	Use:   "ci",
	Short: "Remove the generated GitHub workflows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerator(cmd, deleteDir, generators.DeleteCI, generator.Options{SkipPrompt: deleteYes}, false)
	},
}
