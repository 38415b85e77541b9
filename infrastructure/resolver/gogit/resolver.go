// Package gogit resolves a working copy's remote identity in-process with
// go-git, for environments where no git binary is installed.
package gogit

import (
	"context"
	"fmt"

	git "github.com/go-git/go-git/v5"

	"github.com/gitsleuth/gitsleuth/domain"
)

const (
	backendName   = "gogit"
	defaultRemote = "origin"
)

// Resolver implements domain.Resolver by reading the repository metadata
// directly from the .git directory.
type Resolver struct{}

// New creates a go-git backed Resolver.
func New() *Resolver {
	return &Resolver{}
}

// Name returns the backend identifier.
func (r *Resolver) Name() string { return backendName }

// Resolve opens the repository containing dir and reads the remote URL and
// tracked branch from its configuration. As with the CLI backend, failing
// to determine a branch is not an error; only a missing remote is.
func (r *Resolver) Resolve(_ context.Context, dir string) (domain.RemoteIdentity, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return domain.RemoteIdentity{}, &domain.CommandRunError{
			Err: fmt.Errorf("opening repository at %q: %w", dir, err),
		}
	}

	remoteName, branch := trackingRemote(repo)

	remote, err := repo.Remote(remoteName)
	if err != nil {
		return domain.RemoteIdentity{}, &domain.DetectionError{
			Reason: fmt.Sprintf("No remote %q configured in repository at %s", remoteName, dir),
		}
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return domain.RemoteIdentity{}, &domain.DetectionError{
			Reason: fmt.Sprintf("Remote %q has no URL configured in repository at %s", remoteName, dir),
		}
	}

	return domain.RemoteIdentity{
		URL:    domain.ExpandSCPURL(urls[0]),
		Branch: branch,
	}, nil
}

// trackingRemote mirrors the CLI backend's fallback chain: prefer the
// upstream configured for the current branch, otherwise fall back to
// "origin" and the branch HEAD points to. A detached HEAD leaves the
// branch empty.
func trackingRemote(repo *git.Repository) (string, string) {
	head, err := repo.Head()
	if err != nil || !head.Name().IsBranch() {
		return defaultRemote, ""
	}

	local := head.Name().Short()

	cfg, err := repo.Branch(local)
	if err != nil || cfg.Remote == "" {
		return defaultRemote, local
	}

	branch := local
	if cfg.Merge != "" {
		branch = cfg.Merge.Short()
	}

	return cfg.Remote, branch
}
