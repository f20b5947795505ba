package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/appforge-labs/appforge/internal/aggregator"
	"github.com/appforge-labs/appforge/internal/generator"
	"github.com/spf13/cobra"
)

var (
	envDir      string
	envNoRedact bool
)

func init() {
	envCmd.Flags().StringVar(&envDir, "dir", ".", "Project directory")
	envCmd.Flags().BoolVar(&envNoRedact, "no-redact", false, "Show values without redaction")
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the project .env and the variables still to fill in",
	Long: `Print the values set in the project's .env file with sensitive values
redacted, followed by the placeholder variables generators stubbed out that
have no value yet. Use --no-redact to show actual values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		path := filepath.Join(envDir, generator.EnvFile)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(out, "No %s file in %s\n", generator.EnvFile, envDir)
			return nil
		}

		entries, err := aggregator.ParseEnvFile(path)
		if err != nil {
			return err
		}

		for _, e := range entries {
			if e.Placeholder {
				continue
			}
			value := e.Value
			if !envNoRedact {
				value = aggregator.RedactValue(e.Key, e.Value)
			}
			fmt.Fprintf(out, "%s=%s\n", e.Key, value)
		}

		unset := aggregator.UnsetPlaceholders(entries)
		if len(unset) > 0 {
			fmt.Fprintln(out, "\nNot set yet:")
			for _, k := range unset {
				fmt.Fprintf(out, "  %s\n", k)
			}
		}
		return nil
	},
}
