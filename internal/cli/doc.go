// Package cli implements the appforge command tree using cobra. It wires the
// generator registry, the user settings and the terminal prompts together for
// the init, add, delete, env and config commands.
package cli
