// Package install runs the package manager after generation and checks the
// local Node.js against the engines constraint of package.json.
package install
