//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/freezedeps/internal/domain/commands"
	"github.com/rios0rios0/freezedeps/internal/domain/entities"
)

// StubFreezeCommand is a stub implementation of commands.Freeze.
type StubFreezeCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *entities.FreezeResult
	LastSettings     *entities.Settings
}

var _ commands.Freeze = (*StubFreezeCommand)(nil)

func (s *StubFreezeCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) (*entities.FreezeResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if s.Result == nil {
		return &entities.FreezeResult{ArchivePath: settings.ArchivePath()}, nil
	}
	return s.Result, nil
}
