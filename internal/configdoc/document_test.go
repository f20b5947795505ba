package configdoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGet_MissingSegments(t *testing.T) {
	doc, err := Parse([]byte("a:\n  b: 1\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	tests := []struct {
		path string
		ok   bool
	}{
		{"a.b", true},
		{"a", true},
		{"a.c", false},
		{"x.y.z", false},
		{"a.b.c", false},
		{"", false},
		{"a..b", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, ok := doc.Get(tt.path)
			if ok != tt.ok {
				t.Errorf("Get(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			}
		})
	}
}

func TestSet_CreatesIntermediates(t *testing.T) {
	doc := New("")
	if err := doc.Set("a.b.c", "v"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	got, ok := doc.GetString("a.b.c")
	if !ok || got != "v" {
		t.Errorf("GetString(a.b.c) = %q, %v; want v, true", got, ok)
	}
}

func TestSet_PreservesSiblingsAndOrder(t *testing.T) {
	doc, err := Parse([]byte("z: 1\na:\n  y: keep\n  b: old\nm: 2\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if err := doc.Set("a.b", "new"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	keys, err := doc.Keys("a")
	if err != nil {
		t.Fatalf("Keys() error: %v", err)
	}
	if strings.Join(keys, ",") != "y,b" {
		t.Errorf("keys under a = %v, want [y b]", keys)
	}
	if v, _ := doc.GetString("a.y"); v != "keep" {
		t.Errorf("a.y = %q, want keep", v)
	}
	if v, _ := doc.GetString("a.b"); v != "new" {
		t.Errorf("a.b = %q, want new", v)
	}

	rootKeys := topKeys(t, doc)
	if strings.Join(rootKeys, ",") != "z,a,m" {
		t.Errorf("root keys = %v, want [z a m]", rootKeys)
	}
}

func TestSet_ReplacesLeafMapping(t *testing.T) {
	doc, _ := Parse([]byte("a:\n  b: 1\n  c: 2\n"))
	if err := doc.Set("a", map[string]any{"d": 3}); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if doc.Has("a.b") {
		t.Error("Set should replace the leaf, a.b still present")
	}
	if !doc.Has("a.d") {
		t.Error("a.d missing after Set")
	}
}

func TestSet_InvalidPath(t *testing.T) {
	doc := New("")
	for _, p := range []string{"", ".", "a.", ".a", "a..b"} {
		if err := doc.Set(p, 1); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("Set(%q) error = %v, want ErrInvalidPath", p, err)
		}
	}
}

func TestSet_ThroughScalar(t *testing.T) {
	doc, _ := Parse([]byte("a: scalar\n"))
	err := doc.Set("a.b", 1)
	if !errors.Is(err, ErrNotMapping) {
		t.Fatalf("Set through scalar error = %v, want ErrNotMapping", err)
	}
}

func TestMerge_ShallowOneLevel(t *testing.T) {
	doc, _ := Parse([]byte("deps:\n  a: \"1.0\"\n  b: \"1.0\"\n"))
	if err := doc.Merge("deps", map[string]any{"a": "2.0", "c": "3.0"}); err != nil {
		t.Fatalf("Merge() error: %v", err)
	}
	want := map[string]string{"a": "2.0", "b": "1.0", "c": "3.0"}
	for k, v := range want {
		if got, _ := doc.GetString("deps." + k); got != v {
			t.Errorf("deps.%s = %q, want %q", k, got, v)
		}
	}
}

func TestMerge_IntoScalar(t *testing.T) {
	doc, _ := Parse([]byte("deps: none\n"))
	if err := doc.Merge("deps", map[string]any{"a": "1"}); !errors.Is(err, ErrNotMapping) {
		t.Fatalf("Merge() error = %v, want ErrNotMapping", err)
	}
}

func TestDelete(t *testing.T) {
	doc, _ := Parse([]byte("a:\n  b: 1\n  c: 2\n"))
	if err := doc.Delete("a.b"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if doc.Has("a.b") {
		t.Error("a.b still present")
	}
	if !doc.Has("a.c") {
		t.Error("a.c removed")
	}
	if err := doc.Delete("x.y"); err != nil {
		t.Errorf("Delete of absent key error: %v", err)
	}
}

func TestSaveLoad_JSONKeepsOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	doc := New(path)
	if err := doc.Set("name", "demo"); err != nil {
		t.Fatal(err)
	}
	if err := doc.Set("version", "0.0.1"); err != nil {
		t.Fatal(err)
	}
	if err := doc.Merge("scripts", map[string]any{"test": "jest && echo <done>"}); err != nil {
		t.Fatal(err)
	}
	if err := doc.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"name\": \"demo\",\n  \"version\": \"0.0.1\",\n  \"scripts\": {\n    \"test\": \"jest && echo <done>\"\n  }\n}\n"
	if string(data) != want {
		t.Errorf("saved JSON =\n%s\nwant\n%s", data, want)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if v, _ := loaded.GetString("version"); v != "0.0.1" {
		t.Errorf("version = %q, want 0.0.1", v)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if doc.Has("anything") {
		t.Error("empty document reports a key")
	}
}

func TestParse_TopLevelNotMapping(t *testing.T) {
	if _, err := Parse([]byte("- a\n- b\n")); !errors.Is(err, ErrNotMapping) {
		t.Fatalf("Parse() error = %v, want ErrNotMapping", err)
	}
}

func TestDeepMerge_NilNeverRemoves(t *testing.T) {
	doc, _ := Parse([]byte("annotations:\n  final: true\n  auth: true\n"))
	n, _ := doc.Node("annotations")
	err := DeepMerge(n, map[string]any{"auth": false, "final": nil})
	if err != nil {
		t.Fatalf("DeepMerge() error: %v", err)
	}
	if v, _ := doc.Get("annotations.auth"); v != false {
		t.Errorf("auth = %v, want false", v)
	}
	if v, _ := doc.Get("annotations.final"); v != true {
		t.Errorf("final = %v, want true", v)
	}
}

func topKeys(t *testing.T, doc *Document) []string {
	t.Helper()
	var keys []string
	for i := 0; i+1 < len(doc.root.Content); i += 2 {
		keys = append(keys, doc.root.Content[i].Value)
	}
	return keys
}

func TestDocument_JSONIgnoresFormat(t *testing.T) {
	doc, err := Parse([]byte("b: 1\na:\n  c: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := doc.JSON()
	if err != nil {
		t.Fatalf("JSON error: %v", err)
	}
	want := "{\n  \"b\": 1,\n  \"a\": {\n    \"c\": true\n  }\n}\n"
	if string(data) != want {
		t.Errorf("JSON() =\n%s\nwant\n%s", data, want)
	}
}

func TestDeepMerge_TypedMaps(t *testing.T) {
	doc, _ := Parse([]byte("annotations:\n  final: true\n  auth: true\ninputs:\n  LOG_LEVEL: debug\n"))
	err := DeepMerge(doc.root, map[string]any{
		"annotations": map[string]bool{"raw-http": true, "auth": false},
		"inputs":      map[string]string{"tenant": "$T"},
	})
	if err != nil {
		t.Fatalf("DeepMerge() error: %v", err)
	}

	tests := []struct {
		path string
		want any
	}{
		{"annotations.final", true},
		{"annotations.auth", false},
		{"annotations.raw-http", true},
		{"inputs.LOG_LEVEL", "debug"},
		{"inputs.tenant", "$T"},
	}
	for _, tt := range tests {
		if v, ok := doc.Get(tt.path); !ok || v != tt.want {
			t.Errorf("%s = %v (present %v), want %v", tt.path, v, ok, tt.want)
		}
	}
}

func TestDeepMerge_ScalarOverMappingFails(t *testing.T) {
	doc, _ := Parse([]byte("annotations:\n  final: true\n"))
	err := DeepMerge(doc.root, map[string]any{"annotations": "none"})
	if !errors.Is(err, ErrNotMapping) {
		t.Fatalf("DeepMerge() error = %v, want ErrNotMapping", err)
	}
	if v, _ := doc.Get("annotations.final"); v != true {
		t.Errorf("final = %v, want true", v)
	}
}

func TestEntry_LiteralKey(t *testing.T) {
	doc, _ := Parse([]byte("actions:\n  a.b:\n    x: 1\n  c: 2\n"))
	if _, ok := doc.Entry("actions", "a.b"); !ok {
		t.Fatal("Entry(a.b) missing")
	}
	if doc.Has("actions.a.b") {
		t.Error("dotted key resolved as a path")
	}
	removed, err := doc.DeleteEntry("actions", "a.b")
	if err != nil || !removed {
		t.Fatalf("DeleteEntry = %v, %v", removed, err)
	}
	if keys, _ := doc.Keys("actions"); len(keys) != 1 || keys[0] != "c" {
		t.Errorf("keys = %v, want [c]", keys)
	}
	if removed, _ := doc.DeleteEntry("actions", "a.b"); removed {
		t.Error("second DeleteEntry reported removal")
	}
	if _, err := doc.DeleteEntry("actions.c", "x"); !errors.Is(err, ErrNotMapping) {
		t.Errorf("DeleteEntry on scalar error = %v, want ErrNotMapping", err)
	}
}
