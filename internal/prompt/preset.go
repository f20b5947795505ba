package prompt

import (
	"context"
	"fmt"
	"slices"
)

// Preset answers questions from a map keyed by question name. Questions
// without an entry take their default. Preset answers are validated like
// typed ones but are never retried.
type Preset map[string]any

// Input implements Provider.
func (p Preset) Input(ctx context.Context, q Input) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	answer := q.Default
	if v, ok := p[q.Name]; ok {
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("preset answer for %q: want string, got %T", q.Name, v)
		}
		answer = s
	}
	if q.Validate != nil {
		if err := q.Validate(answer); err != nil {
			return "", fmt.Errorf("%s: %w", q.Name, err)
		}
	}
	return answer, nil
}

// Confirm implements Provider.
func (p Preset) Confirm(ctx context.Context, q Confirm) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	v, ok := p[q.Name]
	if !ok {
		return q.Default, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("preset answer for %q: want bool, got %T", q.Name, v)
	}
	return b, nil
}

// Select implements Provider.
func (p Preset) Select(ctx context.Context, q Select) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	options := Selectable(q.Choices)
	if len(options) == 0 {
		return "", fmt.Errorf("%s: %w", q.Name, ErrNoChoices)
	}

	answer := q.Default
	if v, ok := p[q.Name]; ok {
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("preset answer for %q: want string, got %T", q.Name, v)
		}
		answer = s
	}
	if answer == "" {
		return options[0].Value, nil
	}
	for _, c := range options {
		if c.Value == answer {
			return answer, nil
		}
	}
	return "", fmt.Errorf("%s: %q is not one of the choices", q.Name, answer)
}

// Checkbox implements Provider.
func (p Preset) Checkbox(ctx context.Context, q Checkbox) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	answer := CheckedValues(q.Choices)
	if v, ok := p[q.Name]; ok {
		values, ok := v.([]string)
		if !ok {
			return nil, fmt.Errorf("preset answer for %q: want []string, got %T", q.Name, v)
		}
		var valid []string
		for _, c := range Selectable(q.Choices) {
			valid = append(valid, c.Value)
		}
		for _, s := range values {
			if !slices.Contains(valid, s) {
				return nil, fmt.Errorf("%s: %q is not one of the choices", q.Name, s)
			}
		}
		answer = values
	}
	if q.Validate != nil {
		if err := q.Validate(answer); err != nil {
			return nil, fmt.Errorf("%s: %w", q.Name, err)
		}
	}
	return answer, nil
}
