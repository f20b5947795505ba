package generators

import (
	"context"

	"github.com/appforge-labs/appforge/internal/aggregator"
	"github.com/appforge-labs/appforge/internal/generator"
	"github.com/appforge-labs/appforge/internal/scaffold"
)

// WebKey is the manifest key that points at the web assets directory.
const WebKey = "application.web"

var webDependencies = map[string]string{
	"@adobe/react-spectrum": "^3.4.0",
	"react":                 "^18.2.0",
	"react-dom":             "^18.2.0",
}

var webDevDependencies = map[string]string{
	"parcel": "^2.9.0",
}

// NewAddWebAssets returns the add-web-assets generator.
func NewAddWebAssets(opts generator.Options) *generator.Node {
	return generator.New(AddWebAssets, opts, generator.Phases{
		Write: func(ctx context.Context, env *generator.Env, n *generator.Node) error {
			_, webDir := n.Options.Layout()
			if err := render(env, scaffold.SetWebAssets, scaffold.NewScaffoldData(n.Options.ProjectName, "", nil), webDir); err != nil {
				return err
			}
			if !env.Manifest.Has(WebKey) {
				if err := env.Manifest.Set(WebKey, webDir); err != nil {
					return err
				}
				env.Logf("update %s", generator.ManifestFile)
			}
			if err := aggregator.AddDependencies(env.Package, webDependencies, false); err != nil {
				return err
			}
			return aggregator.AddDependencies(env.Package, webDevDependencies, true)
		},
	})
}
