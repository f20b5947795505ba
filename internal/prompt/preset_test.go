package prompt

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestPreset_Input(t *testing.T) {
	ctx := context.Background()
	p := Preset{"name": "custom"}

	got, err := p.Input(ctx, Input{Name: "name", Default: "generic"})
	if err != nil || got != "custom" {
		t.Errorf("Input = %q, %v; want custom", got, err)
	}

	got, err = p.Input(ctx, Input{Name: "other", Default: "generic"})
	if err != nil || got != "generic" {
		t.Errorf("Input default = %q, %v; want generic", got, err)
	}

	errBad := errors.New("bad")
	_, err = p.Input(ctx, Input{Name: "name", Validate: func(string) error { return errBad }})
	if !errors.Is(err, errBad) {
		t.Errorf("Input validate error = %v, want errBad", err)
	}

	_, err = Preset{"name": 3}.Input(ctx, Input{Name: "name"})
	if err == nil {
		t.Error("expected type error")
	}
}

func TestPreset_Confirm(t *testing.T) {
	ctx := context.Background()
	got, err := Preset{"ok": false}.Confirm(ctx, Confirm{Name: "ok", Default: true})
	if err != nil || got {
		t.Errorf("Confirm = %v, %v; want false", got, err)
	}
	got, _ = Preset{}.Confirm(ctx, Confirm{Name: "ok", Default: true})
	if !got {
		t.Error("Confirm default not used")
	}
}

func TestPreset_Select(t *testing.T) {
	ctx := context.Background()
	choices := []Choice{{Label: "A", Value: "a"}, {Label: "--", Separator: true}, {Label: "B", Value: "b"}}

	got, err := Preset{}.Select(ctx, Select{Name: "s", Choices: choices})
	if err != nil || got != "a" {
		t.Errorf("Select default = %q, %v; want a", got, err)
	}
	got, err = Preset{"s": "b"}.Select(ctx, Select{Name: "s", Choices: choices})
	if err != nil || got != "b" {
		t.Errorf("Select = %q, %v; want b", got, err)
	}
	if _, err := (Preset{"s": "z"}).Select(ctx, Select{Name: "s", Choices: choices}); err == nil {
		t.Error("expected error for unknown choice")
	}
	if _, err := (Preset{}).Select(ctx, Select{Name: "s"}); !errors.Is(err, ErrNoChoices) {
		t.Errorf("empty Select error = %v, want ErrNoChoices", err)
	}
}

func TestPreset_Checkbox(t *testing.T) {
	ctx := context.Background()
	choices := BuildChoices([]string{"a"}, []string{"b"}, nil, nil)

	got, err := Preset{}.Checkbox(ctx, Checkbox{Name: "c", Choices: choices})
	if err != nil || !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("Checkbox default = %v, %v; want [a]", got, err)
	}

	got, err = Preset{"c": []string{"generic", "b"}}.Checkbox(ctx, Checkbox{Name: "c", Choices: choices})
	if err != nil || !reflect.DeepEqual(got, []string{"generic", "b"}) {
		t.Errorf("Checkbox = %v, %v", got, err)
	}

	if _, err := (Preset{"c": []string{"nope"}}).Checkbox(ctx, Checkbox{Name: "c", Choices: choices}); err == nil {
		t.Error("expected error for unknown value")
	}
}

func TestPreset_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Preset{}).Input(ctx, Input{Name: "x"}); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
