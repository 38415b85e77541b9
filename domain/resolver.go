package domain

import "context"

// Resolver determines the effective remote URL and tracked branch of a
// local working copy. Implementations read already-configured remote and
// tracking metadata only; they never clone, fetch, or mutate state.
type Resolver interface {
	// Name returns the resolver backend identifier (e.g. "gitcli", "gogit").
	Name() string

	// Resolve returns the remote identity for the repository containing dir.
	// The tracking-branch lookup may legitimately fail (detached HEAD, no
	// upstream); that is not an error and yields an empty Branch instead.
	Resolve(ctx context.Context, dir string) (RemoteIdentity, error)
}
