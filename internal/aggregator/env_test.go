package aggregator

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

func TestAddEnvStub_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")

	changed, err := AddEnvStub(path, "please provide your Analytics credentials", []string{"ANALYTICS_COMPANY", "ANALYTICS_KEY"})
	if err != nil || !changed {
		t.Fatalf("first AddEnvStub = %v, %v; want true, nil", changed, err)
	}
	first, _ := os.ReadFile(path)

	changed, err = AddEnvStub(path, "please provide your Analytics credentials", []string{"ANALYTICS_COMPANY", "ANALYTICS_KEY"})
	if err != nil || changed {
		t.Fatalf("second AddEnvStub = %v, %v; want false, nil", changed, err)
	}
	second, _ := os.ReadFile(path)

	if string(first) != string(second) {
		t.Errorf("file changed on second call:\n%s\n---\n%s", first, second)
	}

	want := "## please provide your Analytics credentials" + lineSep +
		"#ANALYTICS_COMPANY=" + lineSep +
		"#ANALYTICS_KEY=" + lineSep
	if string(first) != want {
		t.Errorf("content = %q, want %q", first, want)
	}
}

func TestAddEnvStub_NewFileIsPrivate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	path := filepath.Join(t.TempDir(), ".env")
	if _, err := AddEnvStub(path, "secrets", []string{"API_KEY"}); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm&0077 != 0 {
		t.Errorf("permissions = %o, want no group or other access", perm)
	}
}

func TestAddEnvStub_AppendsAfterExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("AIO_RUNTIME_NAMESPACE=ns"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := AddEnvStub(path, "events", []string{"EVENTS_CLIENT_ID"}); err != nil {
		t.Fatal(err)
	}
	if _, err := AddEnvStub(path, "target", []string{"TARGET_TENANT"}); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimRight(string(data), lineSep), lineSep)
	want := []string{"AIO_RUNTIME_NAMESPACE=ns", "## events", "#EVENTS_CLIENT_ID=", "## target", "#TARGET_TENANT="}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %q, want %q", lines, want)
	}
}

func TestAddEnvStub_LabelRequired(t *testing.T) {
	if _, err := AddEnvStub(filepath.Join(t.TempDir(), ".env"), "", []string{"A"}); err == nil {
		t.Fatal("expected error for empty label")
	}
}

func TestParseEnvFile(t *testing.T) {
	tmp := t.TempDir()
	envFile := filepath.Join(tmp, ".env")

	content := `# This is a comment
LOG_LEVEL=info
## analytics
#ANALYTICS_KEY=
CONNECTION_STRING=host=localhost port=5432
#LOG_LEVEL=
EMPTY_VALUE=
`
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := ParseEnvFile(envFile)
	if err != nil {
		t.Fatalf("ParseEnvFile error: %v", err)
	}

	want := []EnvEntry{
		{Key: "LOG_LEVEL", Value: "info"},
		{Key: "ANALYTICS_KEY", Placeholder: true},
		{Key: "CONNECTION_STRING", Value: "host=localhost port=5432"},
		{Key: "LOG_LEVEL", Placeholder: true},
		{Key: "EMPTY_VALUE"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %+v\nwant %+v", entries, want)
	}

	unset := UnsetPlaceholders(entries)
	if !reflect.DeepEqual(unset, []string{"ANALYTICS_KEY"}) {
		t.Errorf("UnsetPlaceholders = %v, want [ANALYTICS_KEY]", unset)
	}
}

func TestParseEnvFile_NotFound(t *testing.T) {
	if _, err := ParseEnvFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRedactValue(t *testing.T) {
	tests := []struct {
		key      string
		value    string
		expected string
	}{
		{"GITHUB_TOKEN", "ghp_abcdef123456", "ghp_***"},
		{"CLIENT_SECRET", "abc", "***"},
		{"api_key", "sk-12345", "sk-1***"},
		{"LOG_LEVEL", "info", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := RedactValue(tt.key, tt.value); got != tt.expected {
				t.Errorf("RedactValue(%q, %q) = %q, want %q", tt.key, tt.value, got, tt.expected)
			}
		})
	}
}

func TestParseEnvFile_QuotedAndExported(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "export REGION=eu-west-1\nGREETING=\"hello world\"\nNAME='single' # trailing\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := ParseEnvFile(envFile)
	if err != nil {
		t.Fatalf("ParseEnvFile error: %v", err)
	}
	want := []EnvEntry{
		{Key: "REGION", Value: "eu-west-1"},
		{Key: "GREETING", Value: "hello world"},
		{Key: "NAME", Value: "single"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %+v\nwant %+v", entries, want)
	}
}
