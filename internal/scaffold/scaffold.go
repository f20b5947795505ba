package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"
)

// Template sets that are not action templates.
const (
	SetApp        = "app"
	SetActionTest = "action-test"
	SetWebAssets  = "web-assets"
	SetCI         = "ci"
)

// namePlaceholder in a template file name is replaced with ScaffoldData.ActionName.
const namePlaceholder = "__name__"

// ScaffoldData holds all template variables available to scaffold templates.
type ScaffoldData struct {
	ProjectName  string
	ActionName   string
	Service      string   // service code, empty for generic actions
	ServiceLabel string   // display name of the service
	InputNames   []string // action inputs in sorted order
	Year         int
}

// NewScaffoldData creates a ScaffoldData with derived fields populated.
func NewScaffoldData(projectName, actionName string, inputs map[string]any) *ScaffoldData {
	names := make([]string, 0, len(inputs))
	for k := range inputs {
		names = append(names, k)
	}
	sort.Strings(names)
	return &ScaffoldData{
		ProjectName: projectName,
		ActionName:  actionName,
		InputNames:  names,
		Year:        time.Now().Year(),
	}
}

// Result holds the outcome of a scaffold generation. Paths are relative to
// OutputDir and use forward slashes.
type Result struct {
	OutputDir string
	Files     []string
	Skipped   []string
}

// Sets returns the names of the embedded template sets.
func Sets() ([]string, error) {
	entries, err := fs.ReadDir(scaffoldFS, "scaffolds")
	if err != nil {
		return nil, err
	}
	var sets []string
	for _, e := range entries {
		if e.IsDir() {
			sets = append(sets, e.Name())
		}
	}
	return sets, nil
}

// Generate renders the template set into outputDir. Existing files are
// never overwritten; they are reported in Result.Skipped.
func Generate(setName string, data *ScaffoldData, outputDir string) (*Result, error) {
	root := path.Join("scaffolds", setName)
	if _, err := fs.ReadDir(scaffoldFS, root); err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", setName, err)
	}

	result := &Result{OutputDir: outputDir}
	err := fs.WalkDir(scaffoldFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		rel := strings.TrimPrefix(p, root+"/")
		outName := outputName(rel, data)
		outPath := filepath.Join(outputDir, filepath.FromSlash(outName))

		if _, err := os.Stat(outPath); err == nil {
			result.Skipped = append(result.Skipped, outName)
			return nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", outPath, err)
		}

		content, err := Render(p, data)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", outPath, err)
		}
		if err := os.WriteFile(outPath, content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, outName)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Render returns the content of one embedded file. Files ending in .tmpl
// are executed with data; GitHub workflow files and other assets use
// {{ }} for their own purposes and are returned as is.
func Render(name string, data *ScaffoldData) ([]byte, error) {
	raw, err := fs.ReadFile(scaffoldFS, name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	if !strings.HasSuffix(name, ".tmpl") {
		return raw, nil
	}

	tmpl, err := template.New(path.Base(name)).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func outputName(rel string, data *ScaffoldData) string {
	out := strings.TrimSuffix(rel, ".tmpl")
	if data != nil && data.ActionName != "" {
		out = strings.ReplaceAll(out, namePlaceholder, data.ActionName)
	}
	return out
}
