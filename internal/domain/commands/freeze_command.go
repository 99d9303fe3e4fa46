package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/freezedeps/internal/domain/entities"
	"github.com/rios0rios0/freezedeps/internal/domain/repositories"
)

// Freeze is the interface for the freeze command.
type Freeze interface {
	Execute(ctx context.Context, settings *entities.Settings) (*entities.FreezeResult, error)
}

// FreezeCommand re-pins a maven_install repository and bundles the generated
// files into a reproducible zip archive:
// repin -> query output base -> collect artifacts -> write archive.
type FreezeCommand struct {
	buildTool repositories.BuildToolRepository
	artifacts repositories.ArtifactRepository
	archive   repositories.ArchiveRepository
	environ   func() []string
}

// NewFreezeCommand creates a new FreezeCommand that inherits the process environment.
func NewFreezeCommand(
	buildTool repositories.BuildToolRepository,
	artifacts repositories.ArtifactRepository,
	archive repositories.ArchiveRepository,
) *FreezeCommand {
	return &FreezeCommand{
		buildTool: buildTool,
		artifacts: artifacts,
		archive:   archive,
		environ:   os.Environ,
	}
}

// Execute runs the whole pipeline. Every step is attempted once and the
// first failure aborts the run.
func (it *FreezeCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) (*entities.FreezeResult, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	tool := settings.BuildTool()
	logger.Debugf(
		"Settings: repo=%q zip=%q zip-repo=%q bazel=%q workspace=%q",
		settings.Repo, settings.Zip, settings.ZipRepo, settings.Bazel, settings.WorkspaceDir,
	)

	env := entities.NewEnvironment(it.environ()).With(entities.RepinEnv, "1")
	logger.Infof("Re-pinning %s", settings.PinTarget())
	if err := it.buildTool.Repin(ctx, tool, settings.Repo, env); err != nil {
		return nil, fmt.Errorf("re-pinning %s: %w", settings.PinTarget(), err)
	}

	outputBase, err := it.buildTool.OutputBase(ctx, tool)
	if err != nil {
		return nil, fmt.Errorf("querying output base: %w", err)
	}
	artifactDir := settings.ArtifactDir(outputBase)
	logger.Infof("Collecting generated files from %s", artifactDir)

	entries, err := it.collectEntries(settings, artifactDir)
	if err != nil {
		return nil, err
	}

	archivePath, err := filepath.Abs(settings.ArchivePath())
	if err != nil {
		return nil, fmt.Errorf("resolving archive path %q: %w", settings.ArchivePath(), err)
	}

	logger.Infof("Writing %d entries to %s", len(entries), archivePath)
	if writeErr := it.archive.Write(archivePath, entries); writeErr != nil {
		return nil, fmt.Errorf("writing archive %s: %w", archivePath, writeErr)
	}

	archived, err := it.archive.List(archivePath)
	if err != nil {
		return nil, fmt.Errorf("reading back archive %s: %w", archivePath, err)
	}

	return &entities.FreezeResult{
		OutputBase:  outputBase,
		ArtifactDir: artifactDir,
		ArchivePath: archivePath,
		Entries:     entries,
		Archived:    archived,
	}, nil
}

// collectEntries reads and transforms every generated file before anything
// is written, so a missing required file never leaves an archive behind.
func (it *FreezeCommand) collectEntries(
	settings *entities.Settings,
	artifactDir string,
) ([]entities.ArchiveEntry, error) {
	artifacts := entities.FrozenArtifacts()
	entries := make([]entities.ArchiveEntry, 0, len(artifacts))

	for _, artifact := range artifacts {
		path := filepath.Join(artifactDir, artifact.Name)

		content, err := it.artifacts.Read(path)
		if errors.Is(err, fs.ErrNotExist) {
			if artifact.Required {
				return nil, fmt.Errorf("%w: %s", entities.ErrRequiredFileMissing, path)
			}
			logger.Debugf("Skipping %s (not generated)", artifact.Name)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		entries = append(entries, entities.ArchiveEntry{
			Name:       artifact.Name,
			Content:    artifact.Apply(content, settings),
			SourceSize: len(content),
			Transform:  artifact.Transform,
		})
	}

	return entries, nil
}
