//go:build integration || unit || test

package resolverdoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/gitsleuth/gitsleuth/domain"
)

// StubResolver is a stub implementation of domain.Resolver.
type StubResolver struct {
	BackendName      string
	Identity         domain.RemoteIdentity
	ResolveErr       error
	ResolveCallCount int
	LastDir          string
}

var _ domain.Resolver = (*StubResolver)(nil)

func (s *StubResolver) Name() string {
	if s.BackendName == "" {
		return "stub"
	}
	return s.BackendName
}

func (s *StubResolver) Resolve(_ context.Context, dir string) (domain.RemoteIdentity, error) {
	s.ResolveCallCount++
	s.LastDir = dir
	return s.Identity, s.ResolveErr
}
