package controllers

import (
	"github.com/rios0rios0/freezedeps/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewFreezeController); err != nil {
		return err
	}
	if err := container.Provide(NewVersionController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers for the AppInternal.
func NewControllers(versionController *VersionController) *[]entities.Controller {
	return &[]entities.Controller{
		versionController,
	}
}
