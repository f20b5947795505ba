package cli

import (
	"github.com/appforge-labs/appforge/internal/generator"
	"github.com/appforge-labs/appforge/internal/generators"
	"github.com/spf13/cobra"
)

// Shared flags for all add subcommands.
var (
	addDir         string
	addYes         bool
	addSkipInstall bool
	addName        string
	addTemplate    string
)

func init() {
	addCmd.PersistentFlags().StringVar(&addDir, "dir", ".", "Project directory")
	addCmd.PersistentFlags().BoolVarP(&addYes, "yes", "y", false, "Skip questions and use defaults")
	addCmd.PersistentFlags().BoolVar(&addSkipInstall, "skip-install", false, "Skip installing npm dependencies")
	rootCmd.AddCommand(addCmd)

	addActionCmd.Flags().StringVar(&addName, "name", "", "Action name (default: template name)")
	addActionCmd.Flags().StringVar(&addTemplate, "template", "", "Action template, e.g. generic, target, analytics")
	addEventsCmd.Flags().StringVar(&addName, "name", "", "Action name (default: publish-events)")

	addCmd.AddCommand(addActionCmd)
	addCmd.AddCommand(addEventsCmd)
	addCmd.AddCommand(addWebAssetsCmd)
	addCmd.AddCommand(addCICmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a component to an existing project",
}

func addOptions() generator.Options {
	return generator.Options{
		SkipPrompt:  addYes,
		SkipInstall: skipInstall(addSkipInstall),
		ActionName:  addName,
		Template:    addTemplate,
	}
}

func runAdd(cmd *cobra.Command, name string, opts generator.Options) error {
	return runGenerator(cmd, addDir, name, opts, !opts.SkipInstall)
}

var addActionCmd = &cobra.Command{
	Use:   "action",
	Short: "Add one or more actions",
	Long: `Add actions from the template catalog. Without --template you pick
templates from a list; a name that is already taken gets a numeric suffix.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd, generators.AddAction, addOptions())
	},
}

var addEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Add an action that publishes events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := addOptions()
		opts.Template = ""
		return runAdd(cmd, generators.AddEvents, opts)
	},
}

var addWebAssetsCmd = &cobra.Command{
	Use:   "web-assets",
	Short: "Add a web UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd, generators.AddWebAssets, generator.Options{SkipPrompt: addYes, SkipInstall: skipInstall(addSkipInstall)})
	},
}

var addCICmd = &cobra.Command{
	Use:   "ci",
	Short: "Add GitHub workflows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerator(cmd, addDir, generators.AddCI, generator.Options{SkipPrompt: addYes, SkipInstall: true}, false)
	},
}
