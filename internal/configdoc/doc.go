// Package configdoc provides an ordered YAML/JSON document addressed by
// dotted key paths. It backs both the app manifest (app.config.yaml) and
// the package descriptor (package.json) so repeated generator runs can
// write individual keys without disturbing anything else in the file.
package configdoc
