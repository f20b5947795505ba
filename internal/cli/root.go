package cli

import (
	"github.com/appforge-labs/appforge/internal/branding"
	"github.com/appforge-labs/appforge/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds serverless app projects and grows them over time.

A project is a tree of generators: actions, event publishers, web assets and
CI workflows. Each generator renders its files and merges its entries into
app.config.yaml, package.json and .env without touching what is already there.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
