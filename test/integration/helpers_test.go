//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appforge-labs/appforge/internal/configdoc"
	"github.com/appforge-labs/appforge/internal/generator"
	"github.com/appforge-labs/appforge/internal/generators"
	"github.com/appforge-labs/appforge/internal/manifest"
	"github.com/appforge-labs/appforge/internal/prompt"
)

// testEnv is an isolated project directory plus the output of the last run.
type testEnv struct {
	ProjectDir string
	Out        bytes.Buffer
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{ProjectDir: filepath.Join(t.TempDir(), "project")}
}

// run executes a generator against the project with answers read from stdin.
func (e *testEnv) run(t *testing.T, name string, opts generator.Options, stdin string) error {
	t.Helper()
	if err := os.MkdirAll(e.ProjectDir, 0755); err != nil {
		t.Fatalf("creating project dir: %v", err)
	}
	env, err := generator.NewEnv(e.ProjectDir)
	if err != nil {
		t.Fatalf("NewEnv: %v", err)
	}
	e.Out.Reset()
	env.Registry = generators.NewRegistry()
	env.Out = &e.Out
	env.Answers = prompt.NewInteractive(strings.NewReader(stdin), &e.Out)

	root, err := env.Registry.New(name, opts)
	if err != nil {
		t.Fatalf("Registry.New(%s): %v", name, err)
	}
	return generator.Run(context.Background(), env, root)
}

func (e *testEnv) mustRun(t *testing.T, name string, opts generator.Options, stdin string) {
	t.Helper()
	if err := e.run(t, name, opts, stdin); err != nil {
		t.Fatalf("%s: %v\noutput:\n%s", name, err, e.Out.String())
	}
}

func (e *testEnv) actions(t *testing.T) []string {
	t.Helper()
	names, err := manifest.ListEntities(e.doc(t, generator.ManifestFile), manifest.DefaultNamespacePath)
	if err != nil {
		t.Fatalf("ListEntities: %v", err)
	}
	return names
}

func (e *testEnv) doc(t *testing.T, name string) *configdoc.Document {
	t.Helper()
	doc, err := configdoc.Load(filepath.Join(e.ProjectDir, name))
	if err != nil {
		t.Fatalf("loading %s: %v", name, err)
	}
	return doc
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}
