package cli

import (
	"fmt"
	"os"

	"github.com/appforge-labs/appforge/internal/config"
	"github.com/appforge-labs/appforge/internal/generator"
	"github.com/appforge-labs/appforge/internal/generators"
	"github.com/appforge-labs/appforge/internal/install"
	"github.com/appforge-labs/appforge/internal/prompt"
	"github.com/spf13/cobra"
)

// newEnv loads the project in dir and wires the collaborators every
// generator run shares.
func newEnv(cmd *cobra.Command, dir string, skipPrompt bool) (*generator.Env, error) {
	env, err := generator.NewEnv(dir)
	if err != nil {
		return nil, err
	}

	s := config.Current()
	env.Settings = generator.Settings{
		Runtime:    s.Runtime,
		NodeEngine: s.NodeEngine,
		Namespace:  s.PackageNamespace,
	}
	env.Registry = generators.NewRegistry()
	env.Out = cmd.OutOrStdout()
	env.Installer = &install.NPMInstaller{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
	if skipPrompt {
		env.Answers = prompt.Preset{}
	} else {
		env.Answers = prompt.NewInteractive(cmd.InOrStdin(), cmd.ErrOrStderr())
	}
	return env, nil
}

// runGenerator builds the named generator and runs it in dir. When install
// is set, dependencies are installed after the tree finishes.
func runGenerator(cmd *cobra.Command, dir, name string, opts generator.Options, install bool) error {
	env, err := newEnv(cmd, dir, opts.SkipPrompt)
	if err != nil {
		return err
	}
	root, err := env.Registry.New(name, opts)
	if err != nil {
		return err
	}
	if err := generator.Run(cmd.Context(), env, root); err != nil {
		return err
	}
	if install {
		if err := generators.InstallDependencies(cmd.Context(), env); err != nil {
			return err
		}
	}

	if len(env.Warnings) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%d warning(s):\n", len(env.Warnings))
		for _, w := range env.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", w)
		}
	}
	return nil
}

// skipInstall combines the --skip-install flag with the user setting.
func skipInstall(flag bool) bool {
	return flag || config.Current().SkipInstall
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating project directory %s: %w", dir, err)
	}
	return nil
}
