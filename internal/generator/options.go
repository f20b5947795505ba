package generator

import "strings"

// Default layout of a generated project, relative to Env.Dir.
const (
	DefaultActionsDir = "actions"
	DefaultTestDir    = "test"
	DefaultWebDir     = "web-src"
)

// Options is the full set of settings a node can be constructed with.
// Children receive only what their parent passes to Compose.
type Options struct {
	// SkipPrompt answers every question with its option value or default.
	SkipPrompt bool
	// SkipInstall suppresses the trailing dependency install.
	SkipInstall bool

	ProjectName string
	// ActionName is the requested name for add-action and delete-action.
	ActionName string
	// Template is the catalog template an add-action node generates.
	Template string

	// SelectedServices are service codes already chosen for the project.
	SelectedServices []string
	// SupportedServices are service codes the organization can use.
	SupportedServices []string
	// Components are the generators the app node composes.
	Components []string

	ActionsDir string
	WebDir     string
}

// Layout returns the actions and web directories with defaults applied.
func (o Options) Layout() (actionsDir, webDir string) {
	actionsDir, webDir = o.ActionsDir, o.WebDir
	if actionsDir == "" {
		actionsDir = DefaultActionsDir
	}
	if webDir == "" {
		webDir = DefaultWebDir
	}
	return actionsDir, webDir
}

// SplitList parses a comma-separated flag value, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
