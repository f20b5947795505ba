package install

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Installer installs the dependencies declared in dir/package.json.
type Installer interface {
	Install(ctx context.Context, dir string) error
}

// NPMInstaller runs `npm install` in the project directory.
type NPMInstaller struct {
	// Command is the executable to run; defaults to "npm".
	Command string
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Install runs the package manager, streaming its output.
func (n *NPMInstaller) Install(ctx context.Context, dir string) error {
	name := n.Command
	if name == "" {
		name = "npm"
	}
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("installing dependencies requires %s: %w", name, err)
	}

	stdout := n.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := n.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stderrBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "install")
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("%s install exited with code %d: %s",
				name, exitErr.ExitCode(), strings.TrimSpace(lastLine(stderrBuf.String())))
		}
		return fmt.Errorf("running %s install: %w", name, err)
	}
	return nil
}

// NodeVersion returns the version reported by `node --version`, without
// the leading "v".
func NodeVersion(ctx context.Context) (string, error) {
	bin, err := exec.LookPath("node")
	if err != nil {
		return "", fmt.Errorf("node not found: %w", err)
	}
	out, err := exec.CommandContext(ctx, bin, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running node --version: %w", err)
	}
	return strings.TrimPrefix(strings.TrimSpace(string(out)), "v"), nil
}

// CheckEngine reports whether version satisfies the engines constraint.
func CheckEngine(version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return c.Check(v), nil
}

func lastLine(s string) string {
	s = strings.TrimRight(s, "\n")
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
