package prompt

import (
	"context"
	"errors"
)

// ErrNoChoices is returned when a selection is requested from an empty list.
var ErrNoChoices = errors.New("no choices to select from")

// Input asks for a free-text answer.
type Input struct {
	Name     string
	Message  string
	Default  string
	Validate func(string) error
}

// Confirm asks a yes/no question.
type Confirm struct {
	Name    string
	Message string
	Default bool
}

// Select asks for exactly one of Choices.
type Select struct {
	Name    string
	Message string
	Choices []Choice
	Default string
}

// Checkbox asks for any number of Choices; checked choices are the default.
type Checkbox struct {
	Name     string
	Message  string
	Choices  []Choice
	Validate func([]string) error
}

// Choice is one entry of a Select or Checkbox list. Separators are shown but
// cannot be picked.
type Choice struct {
	Label     string
	Value     string
	Checked   bool
	Separator bool
}

// Provider answers questions for a generator run.
type Provider interface {
	Input(ctx context.Context, q Input) (string, error)
	Confirm(ctx context.Context, q Confirm) (bool, error)
	Select(ctx context.Context, q Select) (string, error)
	Checkbox(ctx context.Context, q Checkbox) ([]string, error)
}

// Selectable returns the non-separator choices.
func Selectable(choices []Choice) []Choice {
	out := make([]Choice, 0, len(choices))
	for _, c := range choices {
		if !c.Separator {
			out = append(out, c)
		}
	}
	return out
}

// CheckedValues returns the values of the checked, selectable choices.
func CheckedValues(choices []Choice) []string {
	var out []string
	for _, c := range Selectable(choices) {
		if c.Checked {
			out = append(out, c.Value)
		}
	}
	return out
}
