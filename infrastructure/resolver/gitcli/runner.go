package gitcli

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/gitsleuth/gitsleuth/domain"
)

// Runner executes a git subcommand in a working directory and returns its
// trimmed standard output. Implementations must be safe for concurrent
// use; each call spawns an independent process.
//
// Errors are typed: *domain.CommandRunError when the process could not be
// started at all, *domain.CommandExitError when it ran and exited with a
// non-zero status.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// execRunner runs the configured git command via os/exec.
type execRunner struct {
	command string
}

// NewRunner returns a Runner that invokes the given command name or path.
func NewRunner(command string) Runner {
	return &execRunner{command: command}
}

func (r *execRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.command, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &domain.CommandExitError{
				Command: r.command,
				Args:    args,
				Stderr:  strings.TrimSpace(stderr.String()),
			}
		}
		return "", &domain.CommandRunError{Err: err}
	}

	return strings.TrimSpace(stdout.String()), nil
}
