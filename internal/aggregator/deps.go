package aggregator

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/appforge-labs/appforge/internal/configdoc"
)

// Package descriptor keys.
const (
	DependenciesKey    = "dependencies"
	DevDependenciesKey = "devDependencies"
	ScriptsKey         = "scripts"
	EnginesKey         = "engines"
	NodeEngineKey      = EnginesKey + ".node"
)

// AddDependencies merges deps into dependencies (or devDependencies when dev
// is set). A key that already exists takes the new version.
func AddDependencies(pkg *configdoc.Document, deps map[string]string, dev bool) error {
	if len(deps) == 0 {
		return nil
	}
	key := DependenciesKey
	if dev {
		key = DevDependenciesKey
	}
	if err := pkg.Merge(key, toAny(deps)); err != nil {
		return fmt.Errorf("adding %s: %w", key, err)
	}
	return nil
}

// AddScripts merges scripts into the scripts mapping with the same
// semantics as AddDependencies.
func AddScripts(pkg *configdoc.Document, scripts map[string]string) error {
	if len(scripts) == 0 {
		return nil
	}
	if err := pkg.Merge(ScriptsKey, toAny(scripts)); err != nil {
		return fmt.Errorf("adding scripts: %w", err)
	}
	return nil
}

// EnsureEngine records the node engine constraint unless one is already
// present. It reports whether the constraint was written.
func EnsureEngine(pkg *configdoc.Document, constraint string) (bool, error) {
	if _, err := semver.NewConstraint(constraint); err != nil {
		return false, fmt.Errorf("invalid engine constraint %q: %w", constraint, err)
	}
	if pkg.Has(NodeEngineKey) {
		return false, nil
	}
	if err := pkg.Set(NodeEngineKey, constraint); err != nil {
		return false, fmt.Errorf("setting node engine: %w", err)
	}
	return true, nil
}

// Dependencies returns the recorded dependency versions. A dependencies
// mapping that is not a string-to-string map is an error.
func Dependencies(pkg *configdoc.Document, dev bool) (map[string]string, error) {
	key := DependenciesKey
	if dev {
		key = DevDependenciesKey
	}
	out := map[string]string{}
	n, ok := pkg.Node(key)
	if !ok {
		return out, nil
	}
	if err := n.Decode(&out); err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return out, nil
}

func toAny(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
