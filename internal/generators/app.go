package generators

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/appforge-labs/appforge/internal/aggregator"
	"github.com/appforge-labs/appforge/internal/generator"
	"github.com/appforge-labs/appforge/internal/install"
	"github.com/appforge-labs/appforge/internal/manifest"
	"github.com/appforge-labs/appforge/internal/prompt"
	"github.com/appforge-labs/appforge/internal/scaffold"
)

var appScripts = map[string]string{
	"test": "jest --passWithNoTests ./test",
	"lint": "eslint --ignore-pattern web-src --no-error-on-unmatched-pattern test actions",
}

var appDevDependencies = map[string]string{
	"eslint": "^8",
	"jest":   "^29",
}

// NewApp returns the root generator of a new project. It writes the base
// files and package.json, composes one child per component, then validates
// the manifest and installs dependencies.
func NewApp(opts generator.Options) *generator.Node {
	var components []Component

	return generator.New(App, opts, generator.Phases{
		Initialize: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			parsed, err := ParseComponents(n.Options.Components)
			if err != nil {
				return fmt.Errorf("%w: %v", generator.ErrPrecondition, err)
			}
			components = parsed
			return nil
		},

		Prompt: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			if n.Options.ProjectName == "" {
				def := filepath.Base(env.Dir)
				if n.Options.SkipPrompt {
					n.Options.ProjectName = def
				} else {
					name, err := env.Answers.Input(ctx, prompt.Input{
						Name:    "projectName",
						Message: "Project name",
						Default: def,
						Validate: func(s string) error {
							if s == "" {
								return errors.New("project name is required")
							}
							return nil
						},
					})
					if err != nil {
						return err
					}
					n.Options.ProjectName = name
				}
			}

			if len(components) > 0 {
				return nil
			}
			if n.Options.SkipPrompt {
				components = DefaultComponents()
				return nil
			}
			picked, err := env.Answers.Checkbox(ctx, prompt.Checkbox{
				Name:    "components",
				Message: "Which components do you want to include?",
				Choices: componentChoices(DefaultComponents()),
			})
			if err != nil {
				return err
			}
			components, err = ParseComponents(picked)
			return err
		},

		Write: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			if err := writePackage(env, n.Options.ProjectName); err != nil {
				return err
			}
			if err := render(env, scaffold.SetApp, scaffold.NewScaffoldData(n.Options.ProjectName, "", nil), "."); err != nil {
				return err
			}

			for _, c := range components {
				childOpts := generator.Options{
					SkipPrompt:  n.Options.SkipPrompt,
					SkipInstall: true,
					ProjectName: n.Options.ProjectName,
					ActionsDir:  n.Options.ActionsDir,
					WebDir:      n.Options.WebDir,
				}
				if c == Actions {
					childOpts.SelectedServices = n.Options.SelectedServices
					childOpts.SupportedServices = n.Options.SupportedServices
				}
				if _, err := n.Compose(env, c.Config().Add, childOpts); err != nil {
					return err
				}
			}
			return nil
		},

		Finalize: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			validateManifest(env)
			if n.Options.SkipInstall {
				env.Logf("skipping dependency install")
				return nil
			}
			return InstallDependencies(ctx, env)
		},
	})
}

func writePackage(env *generator.Env, projectName string) error {
	pkg := env.Package
	if !pkg.Has("name") {
		if err := pkg.Set("name", projectName); err != nil {
			return err
		}
	}
	if !pkg.Has("version") {
		if err := pkg.Set("version", "0.0.1"); err != nil {
			return err
		}
	}
	if !pkg.Has("private") {
		if err := pkg.Set("private", true); err != nil {
			return err
		}
	}
	if err := aggregator.AddScripts(pkg, appScripts); err != nil {
		return err
	}
	if err := aggregator.AddDependencies(pkg, appDevDependencies, true); err != nil {
		return err
	}
	if _, err := aggregator.EnsureEngine(pkg, env.Settings.NodeEngine); err != nil {
		return fmt.Errorf("%w: %v", generator.ErrPrecondition, err)
	}
	env.Logf("update %s", generator.PackageFile)
	return nil
}

// validateManifest reports schema issues as warnings.
func validateManifest(env *generator.Env) {
	if env.Manifest.Empty() {
		return
	}
	result, err := manifest.ValidateDocument(env.Manifest)
	if err != nil {
		env.Warn("could not validate %s: %v", generator.ManifestFile, err)
		return
	}
	for _, issue := range result.Issues {
		env.Warn("%s: %s", generator.ManifestFile, issue)
	}
}

// InstallDependencies checks the local node against engines.node and runs
// the installer. A missing node is a warning; the installer reports its own
// failure.
func InstallDependencies(ctx context.Context, env *generator.Env) error {
	if env.Installer == nil {
		env.Logf("no installer configured, skipping dependency install")
		return nil
	}
	count := 0
	for _, dev := range []bool{false, true} {
		deps, err := aggregator.Dependencies(env.Package, dev)
		if err != nil {
			return err
		}
		count += len(deps)
	}
	if count == 0 {
		env.Logf("no dependencies to install")
		return nil
	}
	if constraint, ok := env.Package.GetString(aggregator.NodeEngineKey); ok {
		if version, err := install.NodeVersion(ctx); err != nil {
			env.Warn("%v", err)
		} else if ok, err := install.CheckEngine(version, constraint); err != nil {
			env.Warn("%v", err)
		} else if !ok {
			env.Warn("node %s does not satisfy engines.node %q", version, constraint)
		}
	}
	env.Logf("installing dependencies")
	if err := env.Installer.Install(ctx, env.Dir); err != nil {
		return fmt.Errorf("installing dependencies: %w", err)
	}
	return nil
}

func componentChoices(checked []Component) []prompt.Choice {
	on := make(map[Component]bool, len(checked))
	for _, c := range checked {
		on[c] = true
	}
	var choices []prompt.Choice
	for _, c := range AllComponents() {
		choices = append(choices, prompt.Choice{
			Label:   c.Config().Label,
			Value:   string(c),
			Checked: on[c],
		})
	}
	return choices
}
