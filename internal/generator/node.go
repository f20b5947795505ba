package generator

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrPrecondition marks a run that cannot proceed with the given state or
	// options, such as deleting something that does not exist.
	ErrPrecondition = errors.New("precondition failed")

	// ErrUnknownGenerator is returned for a name missing from the Registry.
	ErrUnknownGenerator = errors.New("unknown generator")

	// ErrComposeClosed is returned when a node composes a child after its
	// children have started running.
	ErrComposeClosed = errors.New("cannot compose after children started")
)

// Phase is one step of a node. It receives the shared Env and the node itself.
type Phase func(ctx context.Context, env *Env, n *Node) error

// Phases groups a node's steps. Nil phases are skipped.
type Phases struct {
	Initialize Phase
	Prompt     Phase
	Write      Phase
	Finalize   Phase
}

// Node is one generator step in a composition tree.
type Node struct {
	Name    string
	Options Options

	phases   Phases
	children []*Node
	sealed   bool
}

// New creates a node.
func New(name string, opts Options, phases Phases) *Node {
	return &Node{Name: name, Options: opts, phases: phases}
}

// Children returns the composed children in registration order.
func (n *Node) Children() []*Node {
	return n.children
}

// Add schedules child to run after n's Write phase.
func (n *Node) Add(child *Node) error {
	if n.sealed {
		return fmt.Errorf("%s: composing %s: %w", n.Name, child.Name, ErrComposeClosed)
	}
	n.children = append(n.children, child)
	return nil
}

// Compose builds the generator registered under name with exactly opts and
// schedules it as a child of n.
func (n *Node) Compose(env *Env, name string, opts Options) (*Node, error) {
	child, err := env.Registry.New(name, opts)
	if err != nil {
		return nil, err
	}
	if err := n.Add(child); err != nil {
		return nil, err
	}
	return child, nil
}

// Constructor builds a node from its options.
type Constructor func(Options) *Node

// Registry maps generator names to constructors.
type Registry map[string]Constructor

// New constructs the named generator.
func (r Registry) New(name string, opts Options) (*Node, error) {
	ctor, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownGenerator)
	}
	return ctor(opts), nil
}

// Names returns the registered generator names, sorted.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
