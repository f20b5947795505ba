package generators

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/appforge-labs/appforge/internal/aggregator"
	"github.com/appforge-labs/appforge/internal/generator"
	"github.com/appforge-labs/appforge/internal/manifest"
	"github.com/appforge-labs/appforge/internal/prompt"
	"github.com/appforge-labs/appforge/internal/scaffold"
)

// NewAddAction returns the add-action generator. Without Options.Template
// it asks which catalog templates to use and composes one add-action child
// per template; with a template it generates a single action.
func NewAddAction(opts generator.Options) *generator.Node {
	if opts.Template == "" {
		return newActionChooser(opts)
	}
	return newAction(opts)
}

func newActionChooser(opts generator.Options) *generator.Node {
	var templates []string

	return generator.New(AddAction, opts, generator.Phases{
		Prompt: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			cat, err := scaffold.LoadCatalog()
			if err != nil {
				return err
			}
			selected := cat.Names(n.Options.SelectedServices)
			if n.Options.SkipPrompt {
				templates = selected
				if len(templates) == 0 {
					templates = []string{prompt.GenericValue}
				}
				return nil
			}

			var remaining []string
			for _, a := range cat.Visible() {
				remaining = append(remaining, a.Name)
			}
			choices := prompt.BuildChoices(selected, cat.Names(n.Options.SupportedServices), remaining, templateLabel(cat))
			templates, err = env.Answers.Checkbox(ctx, prompt.Checkbox{
				Name:    "templates",
				Message: "Which actions do you want to start with?",
				Choices: choices,
				Validate: func(v []string) error {
					if len(v) == 0 {
						return errors.New("select at least one action")
					}
					return nil
				},
			})
			return err
		},

		Write: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			for _, t := range templates {
				childOpts := generator.Options{
					SkipPrompt:  n.Options.SkipPrompt,
					SkipInstall: n.Options.SkipInstall,
					ProjectName: n.Options.ProjectName,
					Template:    t,
					ActionsDir:  n.Options.ActionsDir,
				}
				if len(templates) == 1 {
					childOpts.ActionName = n.Options.ActionName
				}
				if _, err := n.Compose(env, AddAction, childOpts); err != nil {
					return err
				}
			}
			return nil
		},
	})
}

func newAction(opts generator.Options) *generator.Node {
	var (
		tmpl scaffold.ActionTemplate
		name string
	)

	return generator.New(AddAction, opts, generator.Phases{
		Initialize: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			cat, err := scaffold.LoadCatalog()
			if err != nil {
				return err
			}
			t, ok := cat.Find(n.Options.Template)
			if !ok {
				return precondition("unknown action template %q", n.Options.Template)
			}
			tmpl = t
			if n.Options.ActionName != "" {
				if err := manifest.ValidateName(n.Options.ActionName); err != nil {
					return fmt.Errorf("%w: %v", generator.ErrPrecondition, err)
				}
			}
			return nil
		},

		Prompt: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			name = n.Options.ActionName
			if name != "" {
				return nil
			}
			def := defaultActionName(tmpl)
			if n.Options.SkipPrompt {
				name = def
				return nil
			}
			answer, err := env.Answers.Input(ctx, prompt.Input{
				Name:     "actionName",
				Message:  fmt.Sprintf("Name for the %s action", tmpl.Label),
				Default:  def,
				Validate: manifest.ValidateName,
			})
			if err != nil {
				return err
			}
			name = answer
			return nil
		},

		Write: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			actionsDir, _ := n.Options.Layout()

			taken, err := takenActionNames(env, actionsDir)
			if err != nil {
				return err
			}
			name = manifest.ResolveUniqueName(taken, name)

			data := scaffold.NewScaffoldData(n.Options.ProjectName, name, tmpl.Inputs)
			data.Service = tmpl.Service
			data.ServiceLabel = tmpl.Label
			if err := render(env, tmpl.Set, data, path.Join(actionsDir, name)); err != nil {
				return err
			}
			if err := render(env, scaffold.SetActionTest, data, generator.DefaultTestDir); err != nil {
				return err
			}

			overrides := map[string]any{}
			if env.Settings.Runtime != "" {
				overrides["runtime"] = env.Settings.Runtime
			}
			if len(tmpl.Inputs) > 0 {
				overrides["inputs"] = tmpl.Inputs
			}
			registered, err := manifest.RegisterEntity(env.Manifest, env.Settings.Namespace, manifest.Entity{
				Name:        name,
				BuildTarget: env.Path(actionsDir, name, "index.js"),
				Overrides:   overrides,
			})
			if err != nil {
				return err
			}
			env.Logf("update %s (action %s)", generator.ManifestFile, registered)

			if err := aggregator.AddDependencies(env.Package, tmpl.Dependencies, false); err != nil {
				return err
			}
			if err := aggregator.AddDependencies(env.Package, tmpl.DevDependencies, true); err != nil {
				return err
			}

			if tmpl.Env != nil {
				added, err := aggregator.AddEnvStub(env.EnvFile, tmpl.Env.Label, tmpl.Env.Vars)
				if err != nil {
					return err
				}
				if added {
					env.Logf("update %s", generator.EnvFile)
				}
			}
			return nil
		},
	})
}

// defaultActionName is the name used without a prompt: the generic default
// for the generic template and the template name otherwise.
func defaultActionName(t scaffold.ActionTemplate) string {
	if t.Name == prompt.GenericValue {
		return manifest.DefaultActionName
	}
	return t.Name
}

// takenActionNames returns names used in the manifest or as a directory
// under actionsDir.
func takenActionNames(env *generator.Env, actionsDir string) (map[string]bool, error) {
	names, err := manifest.ListEntities(env.Manifest, env.Settings.Namespace)
	if err != nil {
		return nil, err
	}
	taken := manifest.NameSet(names)

	entries, err := os.ReadDir(env.Path(actionsDir))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", actionsDir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			taken[e.Name()] = true
		}
	}
	return taken, nil
}

func templateLabel(cat *scaffold.Catalog) func(string) string {
	return func(v string) string {
		if t, ok := cat.Find(v); ok && t.Label != "" {
			return t.Label
		}
		return prompt.DefaultLabel(v)
	}
}
