package generator

import (
	"context"
	"fmt"
)

// Run executes the tree rooted at root. Documents are saved after every
// Write and Finalize so the files on disk follow the traversal. The first
// error aborts the run; files already written stay.
func Run(ctx context.Context, env *Env, root *Node) error {
	return run(ctx, env, root)
}

func run(ctx context.Context, env *Env, n *Node) error {
	for _, step := range []struct {
		name  string
		phase Phase
	}{
		{"initialize", n.phases.Initialize},
		{"prompt", n.phases.Prompt},
		{"write", n.phases.Write},
	} {
		if err := runPhase(ctx, env, n, step.name, step.phase); err != nil {
			return err
		}
	}
	if err := env.Save(); err != nil {
		return fmt.Errorf("%s: %w", n.Name, err)
	}

	n.sealed = true
	for _, child := range n.children {
		if err := run(ctx, env, child); err != nil {
			return fmt.Errorf("%s: %w", n.Name, err)
		}
	}

	if err := runPhase(ctx, env, n, "finalize", n.phases.Finalize); err != nil {
		return err
	}
	if err := env.Save(); err != nil {
		return fmt.Errorf("%s: %w", n.Name, err)
	}
	return nil
}

func runPhase(ctx context.Context, env *Env, n *Node, name string, phase Phase) error {
	if phase == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %s: %w", n.Name, name, err)
	}
	if err := phase(ctx, env, n); err != nil {
		return fmt.Errorf("%s: %s: %w", n.Name, name, err)
	}
	return nil
}
