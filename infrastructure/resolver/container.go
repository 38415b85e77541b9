package resolver

import (
	"go.uber.org/dig"

	"github.com/gitsleuth/gitsleuth/domain"
	"github.com/gitsleuth/gitsleuth/infrastructure/resolver/gitcli"
	"github.com/gitsleuth/gitsleuth/infrastructure/resolver/gogit"
)

// NewDefaultRegistry returns a registry with all built-in backends.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.Register("gitcli", func(opts Options) domain.Resolver {
		return gitcli.New(opts.GitCommand)
	})
	registry.Register("gogit", func(_ Options) domain.Resolver {
		return gogit.New()
	})
	return registry
}

// RegisterProviders registers all resolver providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(NewDefaultRegistry)
}
