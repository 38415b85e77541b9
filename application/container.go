package application

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all application providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(NewDetectorService)
}
