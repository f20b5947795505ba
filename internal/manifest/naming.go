package manifest

import (
	"fmt"
	"regexp"
	"strconv"
)

// DefaultActionName is used when no name is supplied and prompting is off.
const DefaultActionName = "generic"

// namePattern is a simplified form of the runtime's entity name grammar.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{2,31}$`)

// ValidateName checks that name is usable as an action name.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid action name %q: must match %s", name, namePattern.String())
	}
	return nil
}

// NameSet builds a lookup set from a list of names.
func NameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// ResolveUniqueName returns base if it is not in existing, otherwise the
// first of base-1, base-2, ... that is free.
func ResolveUniqueName(existing map[string]bool, base string) string {
	if !existing[base] {
		return base
	}
	for i := 1; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if !existing[candidate] {
			return candidate
		}
	}
}
