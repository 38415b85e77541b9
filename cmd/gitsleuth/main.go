package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitsleuth/gitsleuth/infrastructure/controllers"
)

func buildRootCommand(detectController *controllers.DetectController) *cobra.Command {
	bind := detectController.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   bind.Use,
		Short: bind.Short,
		Long:  bind.Long,
		Args:  cobra.MaximumNArgs(1),
		Run: func(command *cobra.Command, args []string) {
			detectController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().String("git", "",
		"Git command name or path (overrides config)")
	cmd.PersistentFlags().String("backend", "",
		"Resolver backend: gitcli or gogit (overrides config)")
	cmd.PersistentFlags().BoolP("url", "u", false,
		"Print only the web URL of the repository page")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject the controller via DIG
	detectController := injectDetectController()
	cobraRoot := buildRootCommand(detectController)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'gitsleuth': %s", err)
	}
}
