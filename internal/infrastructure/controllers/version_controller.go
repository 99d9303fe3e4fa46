package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/freezedeps/internal/domain/entities"
)

// Version is set via -ldflags at build time.
var Version = "dev" //nolint:gochecknoglobals // set by the linker

// VersionController handles the "version" subcommand.
type VersionController struct{}

// NewVersionController creates a new VersionController.
func NewVersionController() *VersionController {
	return &VersionController{}
}

// GetBind returns the Cobra command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "version",
		Short: "Print the freezedeps version",
	}
}

// Execute prints the version.
func (it *VersionController) Execute(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "freezedeps %s\n", Version)
	return err
}
