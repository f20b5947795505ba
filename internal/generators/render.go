package generators

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/appforge-labs/appforge/internal/generator"
	"github.com/appforge-labs/appforge/internal/scaffold"
)

// render writes a template set under relDir and logs each file.
func render(env *generator.Env, set string, data *scaffold.ScaffoldData, relDir string) error {
	res, err := scaffold.Generate(set, data, env.Path(filepath.FromSlash(relDir)))
	if err != nil {
		return fmt.Errorf("rendering %s: %w", set, err)
	}
	for _, f := range res.Files {
		env.Logf("create %s", path.Join(relDir, f))
	}
	for _, f := range res.Skipped {
		env.Logf("skip %s (exists)", path.Join(relDir, f))
	}
	return nil
}

func precondition(format string, args ...any) error {
	return fmt.Errorf("%w: %s", generator.ErrPrecondition, fmt.Sprintf(format, args...))
}
