package entities

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// DefaultRepo is the name of the maven_install rule frozen when none is given.
	DefaultRepo = "frozen_deps"
	// DefaultZip is the archive written when none is given.
	DefaultZip = "java/private/contrib_rules_jvm_deps.zip"
	// DefaultBazel is the build tool binary looked up on PATH.
	DefaultBazel = "bazel"

	// WorkspaceDirEnv is set by `bazel run` to the root of the invoking workspace.
	WorkspaceDirEnv = "BUILD_WORKSPACE_DIRECTORY"
	// BazelEnv overrides the build tool binary.
	BazelEnv = "FREEZEDEPS_BAZEL"
	// RepinEnv forces rules_jvm_external to re-resolve the pinned artifacts.
	RepinEnv = "REPIN"

	externalDir = "external"
)

// ErrInvalidSettings is returned when the settings cannot drive a freeze.
var ErrInvalidSettings = errors.New("invalid settings")

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// Settings holds everything a single freeze run needs.
type Settings struct {
	Repo         string // maven_install rule to freeze
	Zip          string // destination archive, relative to WorkspaceDir when that is set
	ZipRepo      string // overrides the library name written into compat.bzl
	Bazel        string // build tool binary
	WorkspaceDir string // empty means the current directory
	Verbose      bool
}

// NewSettings returns the settings used when nothing is configured.
func NewSettings() *Settings {
	return &Settings{
		Repo:  DefaultRepo,
		Zip:   DefaultZip,
		Bazel: DefaultBazel,
	}
}

// Validate checks the settings before any external command runs.
func (it *Settings) Validate() error {
	if it.Repo == "" {
		return fmt.Errorf("%w: repo is required", ErrInvalidSettings)
	}
	if !identifierPattern.MatchString(it.Repo) {
		return fmt.Errorf("%w: repo %q is not a valid repository name", ErrInvalidSettings, it.Repo)
	}
	if it.Zip == "" {
		return fmt.Errorf("%w: zip is required", ErrInvalidSettings)
	}
	if strings.HasSuffix(it.Zip, "/") || strings.HasSuffix(it.Zip, string(filepath.Separator)) {
		return fmt.Errorf("%w: zip %q must name a file, not a directory", ErrInvalidSettings, it.Zip)
	}
	if it.ZipRepo != "" && !identifierPattern.MatchString(it.ZipRepo) {
		return fmt.Errorf("%w: zip-repo %q is not a valid repository name", ErrInvalidSettings, it.ZipRepo)
	}
	if it.Bazel == "" {
		return fmt.Errorf("%w: bazel binary is required", ErrInvalidSettings)
	}
	return nil
}

// BuildTool returns how the external build tool should be invoked.
func (it *Settings) BuildTool() BuildTool {
	return BuildTool{Binary: it.Bazel, Dir: it.WorkspaceDir}
}

// PinTarget returns the label that re-pins the configured repository.
func (it *Settings) PinTarget() string {
	return PinTarget(it.Repo)
}

// ArtifactDir returns the directory holding the generated files under outputBase.
func (it *Settings) ArtifactDir(outputBase string) string {
	return filepath.Join(outputBase, externalDir, it.Repo)
}

// ArchivePath returns the destination archive path. A relative zip is
// resolved against WorkspaceDir when one is set, otherwise it is returned as given.
func (it *Settings) ArchivePath() string {
	if it.WorkspaceDir != "" && !filepath.IsAbs(it.Zip) {
		return filepath.Join(it.WorkspaceDir, it.Zip)
	}
	return it.Zip
}

// TargetName returns the library name that replaces the repository name in compat.bzl.
func (it *Settings) TargetName() string {
	if it.ZipRepo != "" {
		return it.ZipRepo
	}
	return trimExtension(filepath.Base(it.Zip))
}

// PinTarget returns the `@unpinned_<repo>//:pin` label.
func PinTarget(repo string) string {
	return "@unpinned_" + repo + "//:pin"
}

// trimExtension drops the final extension of name. Leading dots do not start
// an extension, so ".zip" stays ".zip".
func trimExtension(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || strings.TrimLeft(name, ".") == strings.TrimLeft(ext, ".") {
		return name
	}
	return strings.TrimSuffix(name, ext)
}
