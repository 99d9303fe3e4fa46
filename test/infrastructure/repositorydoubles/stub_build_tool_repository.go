//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/freezedeps/internal/domain/entities"
	"github.com/rios0rios0/freezedeps/internal/domain/repositories"
)

// SpyBuildToolRepository implements repositories.BuildToolRepository as a configurable spy.
type SpyBuildToolRepository struct {
	// --- Repin ---
	RepinErr   error
	RepinCalls []RepinCall

	// --- OutputBase ---
	OutputBasePath  string
	OutputBaseErr   error
	OutputBaseCalls []entities.BuildTool

	// spy: order in which the methods were called
	Calls []string
}

// RepinCall records a single invocation of Repin.
type RepinCall struct {
	Tool entities.BuildTool
	Repo string
	Env  *entities.Environment
}

var _ repositories.BuildToolRepository = (*SpyBuildToolRepository)(nil)

func (s *SpyBuildToolRepository) Repin(
	_ context.Context,
	tool entities.BuildTool,
	repo string,
	env *entities.Environment,
) error {
	s.Calls = append(s.Calls, "repin")
	s.RepinCalls = append(s.RepinCalls, RepinCall{Tool: tool, Repo: repo, Env: env})
	return s.RepinErr
}

func (s *SpyBuildToolRepository) OutputBase(_ context.Context, tool entities.BuildTool) (string, error) {
	s.Calls = append(s.Calls, "output_base")
	s.OutputBaseCalls = append(s.OutputBaseCalls, tool)
	if s.OutputBaseErr != nil {
		return "", s.OutputBaseErr
	}
	return s.OutputBasePath, nil
}
