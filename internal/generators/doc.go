// Package generators holds the concrete generator nodes: the app root that
// composes a project, the add-* nodes for each component, and the delete-*
// nodes that undo them.
package generators
