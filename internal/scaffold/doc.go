// Package scaffold renders the embedded project templates. Template sets are
// directories under scaffolds/; files ending in .tmpl go through text/template
// and every other file is copied verbatim. The action template catalog
// (scaffolds/catalog.yaml) describes which set, dependencies and env stubs
// each action template brings.
package scaffold
