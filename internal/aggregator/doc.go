// Package aggregator accumulates what generators contribute to a project
// outside the manifest: package.json dependencies, scripts and engine
// constraints, and labeled placeholder blocks in the .env file. Every
// operation is safe to repeat from independent generator steps.
package aggregator
