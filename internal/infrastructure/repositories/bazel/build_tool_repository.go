package bazel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"unicode"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/freezedeps/internal/domain/entities"
)

// ErrCommandFailed is returned when the build tool cannot be started or exits non-zero.
var ErrCommandFailed = errors.New("build tool command failed")

// BuildToolRepository runs Bazel as a subprocess. The tool's own output is
// streamed to the configured writers so its diagnostics reach the user.
type BuildToolRepository struct {
	stdout io.Writer
	stderr io.Writer
}

// NewBuildToolRepository creates a repository streaming to the process stdout and stderr.
func NewBuildToolRepository() *BuildToolRepository {
	return NewBuildToolRepositoryWithOutput(os.Stdout, os.Stderr)
}

// NewBuildToolRepositoryWithOutput creates a repository streaming to the given writers.
func NewBuildToolRepositoryWithOutput(stdout, stderr io.Writer) *BuildToolRepository {
	return &BuildToolRepository{stdout: stdout, stderr: stderr}
}

// Repin runs `<bazel> run @unpinned_<repo>//:pin` with env in the tool directory.
func (it *BuildToolRepository) Repin(
	ctx context.Context,
	tool entities.BuildTool,
	repo string,
	env *entities.Environment,
) error {
	args := []string{"run", entities.PinTarget(repo)}

	cmd := it.command(ctx, tool, args)
	cmd.Env = env.Environ()
	cmd.Stdout = it.stdout

	return run(cmd, tool, args)
}

// OutputBase runs `<bazel> info output_base` and returns its trimmed stdout.
func (it *BuildToolRepository) OutputBase(ctx context.Context, tool entities.BuildTool) (string, error) {
	args := []string{"info", "output_base"}

	var stdout bytes.Buffer
	cmd := it.command(ctx, tool, args)
	cmd.Stdout = &stdout

	if err := run(cmd, tool, args); err != nil {
		return "", err
	}

	outputBase := strings.TrimRightFunc(stdout.String(), unicode.IsSpace)
	if outputBase == "" {
		return "", fmt.Errorf("%w: %s printed no output base", ErrCommandFailed, describe(tool, args))
	}
	logger.Debugf("Output base: %s", outputBase)
	return outputBase, nil
}

func (it *BuildToolRepository) command(ctx context.Context, tool entities.BuildTool, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, tool.Binary, args...)
	cmd.Dir = tool.Dir
	cmd.Stderr = it.stderr
	return cmd
}

func run(cmd *exec.Cmd, tool entities.BuildTool, args []string) error {
	logger.Debugf("Running %s (dir: %q)", describe(tool, args), tool.Dir)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCommandFailed, describe(tool, args), err)
	}
	return nil
}

func describe(tool entities.BuildTool, args []string) string {
	return tool.Binary + " " + strings.Join(args, " ")
}
