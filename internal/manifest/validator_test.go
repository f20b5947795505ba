package manifest

import (
	"path/filepath"
	"testing"

	"github.com/appforge-labs/appforge/internal/configdoc"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestValidateFile_ValidManifest(t *testing.T) {
	result, err := ValidateFile(testPath("valid-manifest.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
		for _, issue := range result.Issues {
			t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
	}
}

func TestValidateFile_InvalidManifests(t *testing.T) {
	invalidFiles := []struct {
		file string
		desc string
	}{
		{"invalid-missing-function.yaml", "action missing required function"},
		{"invalid-bad-runtime.yaml", "runtime violates pattern"},
		{"invalid-bad-web.yaml", "web is not yes/no/raw or a boolean"},
		{"corrupt-namespace.yaml", "actions is a list"},
	}

	for _, tt := range invalidFiles {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Errorf("expected invalid for %s (%s), but got valid", tt.file, tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue for %s (%s)", tt.file, tt.desc)
			}
		})
	}
}

func TestValidateFile_InvalidYAML(t *testing.T) {
	_, err := ValidateFile(testPath("invalid-not-yaml.yaml"))
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	_, err := ValidateFile(testPath("nonexistent.yaml"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestValidate_IssueFields(t *testing.T) {
	result, err := ValidateFile(testPath("invalid-bad-runtime.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}

	hasMessage := false
	for _, issue := range result.Issues {
		if issue.Message != "" && issue.Path != "" {
			hasMessage = true
			break
		}
	}
	if !hasMessage {
		t.Error("expected at least one issue with a path and message")
	}
}

func TestValidate_EmptyManifest(t *testing.T) {
	result, err := Validate(nil)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Errorf("empty manifest should be valid, got %v", result.Issues)
	}
}

func TestValidateDocument_AfterRegistration(t *testing.T) {
	doc := configdoc.New(filepath.Join(t.TempDir(), "app.config.yaml"))
	for _, name := range []string{"generic", "generic", "publish-events"} {
		if _, err := RegisterEntity(doc, DefaultNamespacePath, Entity{
			Name:        name,
			BuildTarget: "actions/" + name + "/index.js",
		}); err != nil {
			t.Fatalf("RegisterEntity(%s) error: %v", name, err)
		}
	}

	result, err := ValidateDocument(doc)
	if err != nil {
		t.Fatalf("ValidateDocument error: %v", err)
	}
	if !result.Valid {
		t.Errorf("registered manifest invalid: %v", result.Issues)
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}

func TestValidationIssue_String(t *testing.T) {
	tests := []struct {
		issue ValidationIssue
		want  string
	}{
		{ValidationIssue{Path: "/application", Message: "got string, want object"}, "/application: got string, want object"},
		{ValidationIssue{Message: "missing property"}, "missing property"},
	}
	for _, tt := range tests {
		if got := tt.issue.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
