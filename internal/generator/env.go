package generator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/appforge-labs/appforge/internal/configdoc"
	"github.com/appforge-labs/appforge/internal/install"
	"github.com/appforge-labs/appforge/internal/manifest"
	"github.com/appforge-labs/appforge/internal/prompt"
)

// File names of a generated project.
const (
	ManifestFile = "app.config.yaml"
	PackageFile  = "package.json"
	EnvFile      = ".env"
)

// Settings are the user defaults nodes fall back to.
type Settings struct {
	Runtime    string // action runtime, e.g. nodejs:18
	NodeEngine string // engines.node constraint for new projects
	Namespace  string // key path of the action namespace in the manifest
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Runtime:    manifest.DefaultRuntime,
		NodeEngine: ">=18",
		Namespace:  manifest.DefaultNamespacePath,
	}
}

// Env is the context shared by every node of a run.
type Env struct {
	Dir      string
	Manifest *configdoc.Document
	Package  *configdoc.Document
	EnvFile  string

	Answers   prompt.Provider
	Installer install.Installer
	Registry  Registry
	Settings  Settings
	Out       io.Writer

	// Warnings collects non-fatal problems reported at the end of a run.
	Warnings []string
}

// NewEnv loads the manifest and package descriptor of the project in dir.
// Missing files start empty.
func NewEnv(dir string) (*Env, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	m, err := manifest.Load(filepath.Join(abs, ManifestFile))
	if err != nil {
		return nil, err
	}
	pkg, err := configdoc.Load(filepath.Join(abs, PackageFile))
	if err != nil {
		return nil, fmt.Errorf("loading package descriptor: %w", err)
	}
	return &Env{
		Dir:      abs,
		Manifest: m,
		Package:  pkg,
		EnvFile:  filepath.Join(abs, EnvFile),
		Registry: Registry{},
		Settings: DefaultSettings(),
		Out:      io.Discard,
	}, nil
}

// Save writes the manifest and the package descriptor. Empty documents
// are not written.
func (e *Env) Save() error {
	for _, doc := range []*configdoc.Document{e.Manifest, e.Package} {
		if doc == nil || doc.Empty() {
			continue
		}
		if err := doc.Save(); err != nil {
			return err
		}
	}
	return nil
}

// Logf prints a progress line.
func (e *Env) Logf(format string, args ...any) {
	if e.Out == nil {
		return
	}
	fmt.Fprintf(e.Out, format+"\n", args...)
}

// Warn records a non-fatal problem and prints it.
func (e *Env) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	e.Warnings = append(e.Warnings, msg)
	e.Logf("warning: %s", msg)
}

// Path joins elem onto the project directory.
func (e *Env) Path(elem ...string) string {
	return filepath.Join(append([]string{e.Dir}, elem...)...)
}

// Rel returns p relative to the project directory with forward slashes.
func (e *Env) Rel(p string) string {
	if rel, err := filepath.Rel(e.Dir, p); err == nil {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(p)
}

// LocalPath cleans rel and checks that it names something strictly inside
// the project directory. It returns the cleaned path with forward slashes.
func LocalPath(rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == "." || !filepath.IsLocal(clean) {
		return "", fmt.Errorf("%w: %q is not a path inside the project", ErrPrecondition, rel)
	}
	return filepath.ToSlash(clean), nil
}

// RemoveAll deletes a file or directory under the project and logs it.
// Paths that are not strictly inside the project are refused.
func (e *Env) RemoveAll(rel string) error {
	rel, err := LocalPath(rel)
	if err != nil {
		return err
	}
	p := e.Path(filepath.FromSlash(rel))
	if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := os.RemoveAll(p); err != nil {
		return fmt.Errorf("removing %s: %w", rel, err)
	}
	e.Logf("remove %s", rel)
	return nil
}

// Exists reports whether rel exists under the project directory.
func (e *Env) Exists(rel string) bool {
	_, err := os.Stat(e.Path(filepath.FromSlash(rel)))
	return err == nil
}
