package generators

import (
	"context"

	"github.com/appforge-labs/appforge/internal/generator"
	"github.com/appforge-labs/appforge/internal/scaffold"
)

// WorkflowsDir holds the generated CI workflows.
const WorkflowsDir = ".github/workflows"

// ciWorkflows are the files add-ci writes and delete-ci removes.
var ciWorkflows = []string{"pr_test.yml", "deploy_stage.yml", "deploy_prod.yml"}

// NewAddCI returns the add-ci generator.
func NewAddCI(opts generator.Options) *generator.Node {
	return generator.New(AddCI, opts, generator.Phases{
		Write: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			return render(env, scaffold.SetCI, scaffold.NewScaffoldData(n.Options.ProjectName, "", nil), ".")
		},
	})
}
