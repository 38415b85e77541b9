// Package gitcli resolves a working copy's remote identity by shelling out
// to the git command-line tool.
package gitcli

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitsleuth/gitsleuth/domain"
)

const backendName = "gitcli"

// Resolver implements domain.Resolver on top of a git binary.
type Resolver struct {
	runner Runner
}

// New creates a Resolver that invokes the given git command name or path.
func New(command string) *Resolver {
	return &Resolver{runner: NewRunner(command)}
}

// NewWithRunner creates a Resolver with a custom Runner.
func NewWithRunner(runner Runner) *Resolver {
	return &Resolver{runner: runner}
}

// Name returns the backend identifier.
func (r *Resolver) Name() string { return backendName }

// Resolve determines the remote URL and tracked branch for the repository
// at dir. The tracking-branch probe may fail (detached HEAD, no upstream
// configured); that failure is swallowed and the resolution falls back to
// the "origin" remote and the branch HEAD points to. Only the remote URL
// lookup itself is fatal.
func (r *Resolver) Resolve(ctx context.Context, dir string) (domain.RemoteIdentity, error) {
	remote, branch := r.trackingRemote(ctx, dir)

	url, err := r.remoteURL(ctx, dir, remote)
	if err != nil {
		return domain.RemoteIdentity{}, err
	}

	return domain.RemoteIdentity{URL: url, Branch: branch}, nil
}

// trackingRemote reads the upstream of the current HEAD in the form
// "remote-name/branch-name". When the probe fails or yields no remote
// name, it falls back to "origin" and the name of the branch HEAD points
// to, ignoring failure there too.
func (r *Resolver) trackingRemote(ctx context.Context, dir string) (string, string) {
	out, err := r.runner.Run(ctx, dir, "rev-parse", "--abbrev-ref", "--symbolic", "@{u}")
	if err == nil {
		name, branch, _ := strings.Cut(out, "/")
		if name != "" {
			return name, branch
		}
	}

	branch := ""
	if out, headErr := r.runner.Run(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD"); headErr == nil && out != "HEAD" {
		branch = out
	}

	return "origin", branch
}

// remoteURL reads the remote.<name>.url configuration key and expands
// SCP-style URLs into explicit SSH form.
//
// `git remote get-url` is deliberately not used so that old git versions
// (pre 2.6.1) keep working.
func (r *Resolver) remoteURL(ctx context.Context, dir, name string) (string, error) {
	url, err := r.runner.Run(ctx, dir, "config", "--get", fmt.Sprintf("remote.%s.url", name))
	if err != nil {
		return "", err
	}

	return domain.ExpandSCPURL(url), nil
}
