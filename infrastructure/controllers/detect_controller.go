// Package controllers binds the application services to the CLI.
package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitsleuth/gitsleuth/application"
	"github.com/gitsleuth/gitsleuth/config"
	"github.com/gitsleuth/gitsleuth/domain"
)

// DetectController handles the root command with a path argument.
type DetectController struct {
	service *application.DetectorService
}

// NewDetectController creates a new DetectController.
func NewDetectController(service *application.DetectorService) *DetectController {
	return &DetectController{service: service}
}

// GetBind returns the Cobra command metadata for the detect controller.
func (it *DetectController) GetBind() domain.ControllerBind {
	return domain.ControllerBind{
		Use:   "gitsleuth [path]",
		Short: "Detect the Git hosting service of a local working copy",
		Long: `Detect which Git hosting service (GitHub, GitHub Enterprise, GitLab or
Bitbucket) a local working copy belongs to, based on the remote URL
tracked by the current branch.`,
	}
}

// Execute runs the detection and prints the result.
func (it *DetectController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	gitCommand, _ := cmd.Flags().GetString("git")
	backend, _ := cmd.Flags().GetString("backend")
	urlOnly, _ := cmd.Flags().GetBool("url")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg := loadConfig()
	if gitCommand == "" {
		gitCommand = cfg.GitCommand
	}
	if backend == "" {
		backend = cfg.Backend
	}
	if verbose || cfg.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	logger.Debugf("Detecting service for %q (backend=%q, git=%q)", path, backend, gitCommand)

	service, err := it.service.Detect(ctx, path, application.Options{
		GitCommand: gitCommand,
		Backend:    backend,
	})
	if err != nil {
		logger.Fatalf("Detection failed: %v", err)
	}

	printService(service, urlOnly)
}

// loadConfig reads the settings file when one exists; a missing file is
// not an error.
func loadConfig() *config.Config {
	path, err := config.FindConfigFile()
	if err != nil {
		return config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		logger.Warnf("Ignoring config file %q: %v", path, err)
		return config.Default()
	}

	logger.Debugf("Loaded config from %q", path)
	return cfg
}

func printService(service *domain.GitService, urlOnly bool) {
	if urlOnly {
		fmt.Println(service.WebURL())
		return
	}

	fmt.Printf("service: %s\n", service.Kind())
	fmt.Printf("host:    %s\n", service.Host())
	fmt.Printf("user:    %s\n", service.User())
	fmt.Printf("repo:    %s\n", service.Repo())
	if branch, ok := service.Branch(); ok {
		fmt.Printf("branch:  %s\n", branch)
	}
}
