package cli

import (
	"fmt"

	"github.com/appforge-labs/appforge/internal/branding"
	"github.com/appforge-labs/appforge/internal/generator"
	"github.com/appforge-labs/appforge/internal/generators"
	"github.com/spf13/cobra"
)

var (
	initYes               bool
	initSkipInstall       bool
	initServices          string
	initSupportedServices string
	initProjectName       string
	initComponents        string
)

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Skip questions and use defaults")
	initCmd.Flags().BoolVar(&initSkipInstall, "skip-install", false, "Skip installing npm dependencies")
	initCmd.Flags().StringVar(&initServices, "services", "", "Comma-separated service codes already selected for the project")
	initCmd.Flags().StringVar(&initSupportedServices, "supported-services", "", "Comma-separated service codes your organization supports")
	initCmd.Flags().StringVar(&initProjectName, "project-name", "", "Project name (default: directory name)")
	initCmd.Flags().StringVar(&initComponents, "components", "", "Comma-separated components: actions, events, web-assets, ci")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a new project",
	Long: `Create a new project in dir (default: current directory).

Existing files are kept. Running init again in a project adds new actions
next to the existing ones and merges dependencies into package.json.

Examples:
  ` + branding.CLIName() + ` init my-app
  ` + branding.CLIName() + ` init my-app --yes --services AdobeTargetNG --components actions,ci`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if err := ensureDir(dir); err != nil {
			return err
		}

		opts := generator.Options{
			SkipPrompt:        initYes,
			SkipInstall:       skipInstall(initSkipInstall),
			ProjectName:       initProjectName,
			SelectedServices:  generator.SplitList(initServices),
			SupportedServices: generator.SplitList(initSupportedServices),
			Components:        generator.SplitList(initComponents),
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Creating project in %s\n", dir)
		if err := runGenerator(cmd, dir, generators.App, opts, false); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nProject ready.")
		return nil
	},
}
