// Package manifest registers generated entities (actions) in the app
// manifest. It resolves naming conflicts against the actions already
// present, layers caller overrides onto a default descriptor, and validates
// the resulting document against the embedded manifest JSON Schema.
package manifest
