//go:build unit

package gitcli_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitsleuth/gitsleuth/domain"
	"github.com/gitsleuth/gitsleuth/infrastructure/resolver/gitcli"
)

func TestRunner(t *testing.T) {
	t.Parallel()

	t.Run("should return trimmed stdout on success", func(t *testing.T) {
		t.Parallel()

		// given
		runner := gitcli.NewRunner("sh")

		// when
		out, err := runner.Run(context.Background(), t.TempDir(), "-c", "echo '  hello  '")

		// then
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("should return exit error with trimmed stderr on non-zero exit", func(t *testing.T) {
		t.Parallel()

		// given
		runner := gitcli.NewRunner("sh")

		// when
		_, err := runner.Run(context.Background(), t.TempDir(), "-c", "echo boom >&2; exit 3")

		// then
		var exitErr *domain.CommandExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, "boom", exitErr.Stderr)
		assert.Equal(t, []string{"-c", "echo boom >&2; exit 3"}, exitErr.Args)
	})

	t.Run("should return run error when the command cannot be started", func(t *testing.T) {
		t.Parallel()

		// given
		runner := gitcli.NewRunner("definitely-not-a-real-command-12345")

		// when
		_, err := runner.Run(context.Background(), t.TempDir(), "--version")

		// then
		var runErr *domain.CommandRunError
		require.ErrorAs(t, err, &runErr)
		assert.Contains(t, err.Error(), "cannot run command")
	})
}
