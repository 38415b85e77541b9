// Package application exposes the service-detection entry points: turn a
// path on disk into the hosting-service identity of its repository.
package application

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gitsleuth/gitsleuth/domain"
	"github.com/gitsleuth/gitsleuth/infrastructure/resolver"
)

const (
	// DefaultGitCommand is the command name used when none is configured.
	DefaultGitCommand = "git"
	// DefaultBackend is the resolver backend used when none is configured.
	DefaultBackend = "gitcli"
)

// Options holds per-detection overrides.
type Options struct {
	// GitCommand is the git command name or path. Defaults to "git".
	GitCommand string
	// Backend selects the resolver backend. Defaults to "gitcli".
	Backend string
}

// DetectorService orchestrates the detection flow:
// resolve the remote of the working copy, then classify its URL.
type DetectorService struct {
	registry *resolver.Registry
}

// NewDetectorService creates a service backed by the given registry.
func NewDetectorService(registry *resolver.Registry) *DetectorService {
	return &DetectorService{registry: registry}
}

// Detect returns the hosting-service identity of the repository the given
// path belongs to. When path denotes a file, its containing directory is
// used; no existence check is performed beyond what the backend surfaces
// as failure.
func (s *DetectorService) Detect(ctx context.Context, path string, opts Options) (*domain.GitService, error) {
	if opts.GitCommand == "" {
		opts.GitCommand = DefaultGitCommand
	}
	if opts.Backend == "" {
		opts.Backend = DefaultBackend
	}

	res, err := s.registry.Get(opts.Backend, resolver.Options{GitCommand: opts.GitCommand})
	if err != nil {
		return nil, err
	}

	identity, err := res.Resolve(ctx, repositoryDir(path))
	if err != nil {
		return nil, err
	}

	return domain.Classify(identity.URL, identity.Branch)
}

// Detect detects the hosting service for the given path using the default
// "git" command.
func Detect(ctx context.Context, path string) (*domain.GitService, error) {
	return DetectWithCommand(ctx, path, DefaultGitCommand)
}

// DetectWithCommand is Detect with an explicitly supplied git command name
// or path, for environments where git is not on the default search path.
func DetectWithCommand(ctx context.Context, path, gitCommand string) (*domain.GitService, error) {
	service := NewDetectorService(resolver.NewDefaultRegistry())
	return service.Detect(ctx, path, Options{GitCommand: gitCommand})
}

// repositoryDir maps a location to the directory the backend should run
// in: the containing directory for files, the location itself otherwise.
func repositoryDir(path string) string {
	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		return filepath.Dir(path)
	}
	return path
}
