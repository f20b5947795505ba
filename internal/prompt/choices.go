package prompt

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GenericValue is the fallback entry every composed choice list carries.
const GenericValue = "generic"

// Separator labels for the unchecked tiers.
const (
	AvailableSeparator = "-- available for your organization --"
	OtherSeparator     = "-- other options --"
)

var titleCaser = cases.Title(language.English)

// DefaultLabel turns a value like "campaign-standard" into "Campaign Standard".
func DefaultLabel(value string) string {
	return titleCaser.String(strings.ReplaceAll(value, "-", " "))
}

// BuildChoices composes a checkbox list from three tiers: values already
// selected (checked), values available but not selected, and every other
// known value. The generic entry is always present exactly once and is
// checked when it is selected or nothing else is. A value appears only in the first
// tier that names it. label may be nil.
func BuildChoices(selected, available, remaining []string, label func(string) string) []Choice {
	if label == nil {
		label = DefaultLabel
	}

	seen := map[string]bool{GenericValue: true}
	tier := func(values []string) []string {
		var out []string
		for _, v := range values {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
		return out
	}

	genericSelected := false
	for _, v := range selected {
		if v == GenericValue {
			genericSelected = true
		}
	}

	sel := tier(selected)
	avail := tier(available)
	rest := tier(remaining)

	choices := []Choice{{
		Label:   label(GenericValue),
		Value:   GenericValue,
		Checked: genericSelected || len(sel) == 0,
	}}
	for _, v := range sel {
		choices = append(choices, Choice{Label: label(v), Value: v, Checked: true})
	}
	if len(avail) > 0 {
		choices = append(choices, Choice{Label: AvailableSeparator, Separator: true})
		for _, v := range avail {
			choices = append(choices, Choice{Label: label(v), Value: v})
		}
	}
	if len(rest) > 0 {
		choices = append(choices, Choice{Label: OtherSeparator, Separator: true})
		for _, v := range rest {
			choices = append(choices, Choice{Label: label(v), Value: v})
		}
	}
	return choices
}
