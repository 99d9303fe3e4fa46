//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/freezedeps/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	repo         string
	zip          string
	zipRepo      string
	bazel        string
	workspaceDir string
	verbose      bool
}

// NewSettingsBuilder creates a new settings builder with the built-in defaults
// and a fixed workspace directory.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		repo:         entities.DefaultRepo,
		zip:          entities.DefaultZip,
		bazel:        entities.DefaultBazel,
		workspaceDir: "/workspace",
	}
}

// WithRepo sets the maven_install repository name.
func (b *SettingsBuilder) WithRepo(repo string) *SettingsBuilder {
	b.repo = repo
	return b
}

// WithZip sets the destination archive.
func (b *SettingsBuilder) WithZip(zip string) *SettingsBuilder {
	b.zip = zip
	return b
}

// WithZipRepo sets the library name override.
func (b *SettingsBuilder) WithZipRepo(zipRepo string) *SettingsBuilder {
	b.zipRepo = zipRepo
	return b
}

// WithBazel sets the build tool binary.
func (b *SettingsBuilder) WithBazel(bazel string) *SettingsBuilder {
	b.bazel = bazel
	return b
}

// WithWorkspaceDir sets the workspace directory.
func (b *SettingsBuilder) WithWorkspaceDir(dir string) *SettingsBuilder {
	b.workspaceDir = dir
	return b
}

// WithVerbose enables verbose output.
func (b *SettingsBuilder) WithVerbose() *SettingsBuilder {
	b.verbose = true
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		Repo:         b.repo,
		Zip:          b.zip,
		ZipRepo:      b.zipRepo,
		Bazel:        b.bazel,
		WorkspaceDir: b.workspaceDir,
		Verbose:      b.verbose,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.repo = entities.DefaultRepo
	b.zip = entities.DefaultZip
	b.zipRepo = ""
	b.bazel = entities.DefaultBazel
	b.workspaceDir = "/workspace"
	b.verbose = false
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		repo:         b.repo,
		zip:          b.zip,
		zipRepo:      b.zipRepo,
		bazel:        b.bazel,
		workspaceDir: b.workspaceDir,
		verbose:      b.verbose,
	}
}
