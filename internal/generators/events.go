package generators

import (
	"context"

	"github.com/appforge-labs/appforge/internal/generator"
)

// EventsTemplate is the catalog template of the event publishing action.
const EventsTemplate = "publish-events"

// NewAddEvents returns the add-events generator. It adds an action that
// publishes cloud events, with the provider settings stubbed in .env.
func NewAddEvents(opts generator.Options) *generator.Node {
	return generator.New(AddEvents, opts, generator.Phases{
		Write: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			_, err := n.Compose(env, AddAction, generator.Options{
				SkipPrompt:  n.Options.SkipPrompt,
				SkipInstall: n.Options.SkipInstall,
				ProjectName: n.Options.ProjectName,
				ActionName:  n.Options.ActionName,
				Template:    EventsTemplate,
				ActionsDir:  n.Options.ActionsDir,
			})
			return err
		},
	})
}
