package repositories

import (
	"context"

	"github.com/rios0rios0/freezedeps/internal/domain/entities"
)

// BuildToolRepository abstracts the external build tool (Bazel) so the
// freeze pipeline can run against a fake in tests.
type BuildToolRepository interface {
	// Repin runs the unpinned pin target of repo with env, failing on a non-zero exit.
	Repin(ctx context.Context, tool entities.BuildTool, repo string, env *entities.Environment) error

	// OutputBase returns the tool's output base with trailing whitespace removed.
	OutputBase(ctx context.Context, tool entities.BuildTool) (string, error)
}
