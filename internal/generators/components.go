package generators

import "fmt"

// Component identifies a part of a project that can be added or deleted.
type Component string

const (
	Actions   Component = "actions"
	Events    Component = "events"
	WebAssets Component = "web-assets"
	CI        Component = "ci"
)

// ComponentConfig maps a component to the generators that manage it.
type ComponentConfig struct {
	Label  string
	Add    string
	Delete string // empty when the component cannot be deleted as a whole
}

// AllComponents returns all components in the order the app node composes them.
func AllComponents() []Component {
	return []Component{Actions, Events, WebAssets, CI}
}

// DefaultComponents are composed by a new project when none are given.
func DefaultComponents() []Component {
	return []Component{Actions, WebAssets, CI}
}

var componentRegistry = map[Component]ComponentConfig{
	Actions:   {Label: "Actions: deploy runtime actions", Add: AddAction, Delete: DeleteAction},
	Events:    {Label: "Events: publish to event providers", Add: AddEvents},
	WebAssets: {Label: "Web Assets: deploy a UI", Add: AddWebAssets, Delete: DeleteWebAssets},
	CI:        {Label: "CI/CD: include GitHub workflows", Add: AddCI, Delete: DeleteCI},
}

// Config returns the generators for c.
func (c Component) Config() ComponentConfig {
	return componentRegistry[c]
}

// ParseComponent converts a string to a Component, returning false if invalid.
func ParseComponent(s string) (Component, bool) {
	switch s {
	case "actions", "action":
		return Actions, true
	case "events":
		return Events, true
	case "web-assets":
		return WebAssets, true
	case "ci":
		return CI, true
	default:
		return "", false
	}
}

// ParseComponents parses every name and keeps the order given.
func ParseComponents(names []string) ([]Component, error) {
	out := make([]Component, 0, len(names))
	seen := make(map[Component]bool, len(names))
	for _, n := range names {
		c, ok := ParseComponent(n)
		if !ok {
			return nil, fmt.Errorf("unknown component %q (valid: actions, events, web-assets, ci)", n)
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out, nil
}
