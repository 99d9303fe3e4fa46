package repositories

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/freezedeps/internal/domain/repositories"
	"github.com/rios0rios0/freezedeps/internal/infrastructure/repositories/archive"
	"github.com/rios0rios0/freezedeps/internal/infrastructure/repositories/bazel"
	"github.com/rios0rios0/freezedeps/internal/infrastructure/repositories/filesystem"
)

// NewHostFilesystem returns the host filesystem rooted at "/", so absolute
// paths resolve as they do on the host.
func NewHostFilesystem() billy.Filesystem {
	return osfs.New(string(filepath.Separator))
}

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewHostFilesystem); err != nil {
		return err
	}

	// Register implementations
	if err := container.Provide(bazel.NewBuildToolRepository); err != nil {
		return err
	}
	if err := container.Provide(filesystem.NewArtifactRepository); err != nil {
		return err
	}
	if err := container.Provide(archive.NewZipArchiveRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *bazel.BuildToolRepository) domainRepos.BuildToolRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *filesystem.ArtifactRepository) domainRepos.ArtifactRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *archive.ZipArchiveRepository) domainRepos.ArchiveRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
