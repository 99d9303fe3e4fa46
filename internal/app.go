package internal

import (
	"github.com/rios0rios0/freezedeps/internal/domain/entities"
	"github.com/rios0rios0/freezedeps/internal/infrastructure/controllers"
)

// AppInternal holds the controllers exposed on the command line.
type AppInternal struct {
	freezeController *controllers.FreezeController
	controllers      []entities.Controller
}

// NewAppInternal creates the AppInternal from the injected controllers.
func NewAppInternal(
	freezeController *controllers.FreezeController,
	subcommands *[]entities.Controller,
) *AppInternal {
	return &AppInternal{
		freezeController: freezeController,
		controllers:      *subcommands,
	}
}

// GetFreezeController returns the controller behind the root command.
func (it *AppInternal) GetFreezeController() *controllers.FreezeController {
	return it.freezeController
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
