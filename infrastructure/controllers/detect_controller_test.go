//go:build unit

package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitsleuth/gitsleuth/application"
	"github.com/gitsleuth/gitsleuth/infrastructure/controllers"
	"github.com/gitsleuth/gitsleuth/infrastructure/resolver"
)

func TestGetBind(t *testing.T) {
	t.Parallel()

	t.Run("should expose the root command binding", func(t *testing.T) {
		t.Parallel()

		// given
		service := application.NewDetectorService(resolver.NewDefaultRegistry())
		controller := controllers.NewDetectController(service)

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "gitsleuth [path]", bind.Use)
		assert.NotEmpty(t, bind.Short)
		assert.NotEmpty(t, bind.Long)
	})
}
