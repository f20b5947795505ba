// Package generator runs a tree of generator nodes. Each node has four
// optional phases (Initialize, Prompt, Write, Finalize). Run drives the tree
// depth first: a node's first three phases, then each child it composed in
// order, then its Finalize. Nodes share one explicit Env holding the
// manifest, the package descriptor and the collaborators they talk to.
package generator
