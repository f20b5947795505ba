package generators

import (
	"reflect"
	"testing"
)

func TestParseComponent(t *testing.T) {
	cases := []struct {
		input string
		want  Component
		ok    bool
	}{
		{"actions", Actions, true},
		{"action", Actions, true},
		{"events", Events, true},
		{"web-assets", WebAssets, true},
		{"ci", CI, true},
		{"CI", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseComponent(tc.input)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ParseComponent(%q) = %q, %v; want %q, %v", tc.input, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestParseComponents_DedupKeepsOrder(t *testing.T) {
	got, err := ParseComponents([]string{"ci", "actions", "ci"})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []Component{CI, Actions}) {
		t.Errorf("ParseComponents() = %v", got)
	}
	if _, err := ParseComponents([]string{"db"}); err == nil {
		t.Error("expected error for unknown component")
	}
}

func TestAllComponentsHaveGenerators(t *testing.T) {
	reg := NewRegistry()
	for _, c := range AllComponents() {
		cfg := c.Config()
		if _, ok := reg[cfg.Add]; !ok {
			t.Errorf("%s: add generator %q not registered", c, cfg.Add)
		}
		if cfg.Delete != "" {
			if _, ok := reg[cfg.Delete]; !ok {
				t.Errorf("%s: delete generator %q not registered", c, cfg.Delete)
			}
		}
	}
}
