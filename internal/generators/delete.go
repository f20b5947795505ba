package generators

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/appforge-labs/appforge/internal/generator"
	"github.com/appforge-labs/appforge/internal/manifest"
	"github.com/appforge-labs/appforge/internal/prompt"
)

// confirm asks before a destructive change. Non-interactive runs proceed.
func confirm(ctx context.Context, env *generator.Env, n *generator.Node, message string) (bool, error) {
	if n.Options.SkipPrompt {
		return true, nil
	}
	return env.Answers.Confirm(ctx, prompt.Confirm{
		Name:    "confirm",
		Message: message,
	})
}

// NewDeleteAction returns the delete-action generator. It removes the
// action from the manifest along with its source directory and test.
func NewDeleteAction(opts generator.Options) *generator.Node {
	var (
		name      string
		confirmed bool
	)

	return generator.New(DeleteAction, opts, generator.Phases{
		Initialize: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			names, err := manifest.ListEntities(env.Manifest, env.Settings.Namespace)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				return precondition("there are no actions in this project")
			}
			name = n.Options.ActionName
			if name != "" && !slices.Contains(names, name) {
				return precondition("action %q does not exist (have %s)", name, strings.Join(names, ", "))
			}
			if name == "" && n.Options.SkipPrompt {
				return precondition("an action name is required when prompts are skipped")
			}
			return nil
		},

		Prompt: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			if name == "" {
				entities, err := manifest.LoadEntities(env.Manifest, env.Settings.Namespace)
				if err != nil {
					return err
				}
				choices := make([]prompt.Choice, 0, len(entities))
				for _, e := range entities {
					choices = append(choices, prompt.Choice{
						Label: fmt.Sprintf("%s (%s)", e.Name, e.Descriptor.Function),
						Value: e.Name,
					})
				}
				name, err = env.Answers.Select(ctx, prompt.Select{
					Name:    "actionName",
					Message: "Which action do you want to delete?",
					Choices: choices,
				})
				if err != nil {
					return err
				}
			}
			var err error
			confirmed, err = confirm(ctx, env, n, fmt.Sprintf("Delete action %q? This removes its source and test files.", name))
			return err
		},

		Write: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			if !confirmed {
				env.Logf("nothing deleted")
				return nil
			}
			actionsDir, _ := n.Options.Layout()

			desc, err := manifest.FindEntity(env.Manifest, env.Settings.Namespace, name)
			if err != nil {
				return err
			}
			if dir := path.Dir(desc.Function); strings.HasPrefix(dir, actionsDir+"/") {
				if err := env.RemoveAll(dir); err != nil {
					return err
				}
			}
			if err := env.RemoveAll(path.Join(generator.DefaultTestDir, name+".test.js")); err != nil {
				return err
			}
			if err := manifest.RemoveEntity(env.Manifest, env.Settings.Namespace, name); err != nil {
				return err
			}
			env.Logf("update %s (removed action %s)", generator.ManifestFile, name)
			return nil
		},
	})
}

// NewDeleteWebAssets returns the delete-web-assets generator.
func NewDeleteWebAssets(opts generator.Options) *generator.Node {
	var (
		webDir    string
		confirmed bool
	)

	return generator.New(DeleteWebAssets, opts, generator.Phases{
		Initialize: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			_, webDir = n.Options.Layout()
			if configured, ok := env.Manifest.GetString(WebKey); ok {
				webDir = configured
			}
			local, err := generator.LocalPath(webDir)
			if err != nil {
				return precondition("web assets directory %q is not inside the project", webDir)
			}
			webDir = local
			if !env.Exists(webDir) {
				return precondition("there are no web assets in this project")
			}
			return nil
		},

		Prompt: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			var err error
			confirmed, err = confirm(ctx, env, n, fmt.Sprintf("Delete the web assets in %s?", webDir))
			return err
		},

		Write: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			if !confirmed {
				env.Logf("nothing deleted")
				return nil
			}
			if err := env.RemoveAll(webDir); err != nil {
				return err
			}
			if env.Manifest.Has(WebKey) {
				if err := env.Manifest.Delete(WebKey); err != nil {
					return err
				}
				env.Logf("update %s", generator.ManifestFile)
			}
			return nil
		},
	})
}

// NewDeleteCI returns the delete-ci generator. Only the generated
// workflows are removed; other files under .github stay.
func NewDeleteCI(opts generator.Options) *generator.Node {
	var confirmed bool

	return generator.New(DeleteCI, opts, generator.Phases{
		Initialize: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			for _, f := range ciWorkflows {
				if env.Exists(path.Join(WorkflowsDir, f)) {
					return nil
				}
			}
			return precondition("there is no CI configuration in this project")
		},

		Prompt: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			var err error
			confirmed, err = confirm(ctx, env, n, "Delete the CI workflows?")
			return err
		},

		Write: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			if !confirmed {
				env.Logf("nothing deleted")
				return nil
			}
			for _, f := range ciWorkflows {
				if err := env.RemoveAll(path.Join(WorkflowsDir, f)); err != nil {
					return err
				}
			}
			return nil
		},
	})
}
