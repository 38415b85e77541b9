package main

import (
	"go.uber.org/dig"

	"github.com/gitsleuth/gitsleuth/application"
	"github.com/gitsleuth/gitsleuth/infrastructure/controllers"
	"github.com/gitsleuth/gitsleuth/infrastructure/resolver"
)

func injectDetectController() *controllers.DetectController {
	container := dig.New()

	// Register all layers (bottom-up: resolvers -> application -> controllers)
	if err := resolver.RegisterProviders(container); err != nil {
		panic(err)
	}
	if err := application.RegisterProviders(container); err != nil {
		panic(err)
	}
	if err := controllers.RegisterProviders(container); err != nil {
		panic(err)
	}

	var detectController *controllers.DetectController
	if err := container.Invoke(func(dc *controllers.DetectController) {
		detectController = dc
	}); err != nil {
		panic(err)
	}

	return detectController
}
