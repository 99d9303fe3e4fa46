package entities

import (
	"errors"
	"time"
)

const (
	DefsFile   = "defs.bzl"
	CompatFile = "compat.bzl"
	BuildFile  = "BUILD"
)

// ErrRequiredFileMissing is returned when defs.bzl or BUILD was not generated.
var ErrRequiredFileMissing = errors.New("required file not found")

// FixedModTime is stamped on every archive entry so unchanged inputs
// produce byte-identical archives.
var FixedModTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC) //nolint:gochecknoglobals // constant timestamp

// Transform names the rewrite applied to a generated file before archiving.
type Transform int

const (
	// TransformNone copies the file byte for byte.
	TransformNone Transform = iota
	// TransformStripCredentials drops the `netrc = ...` lines.
	TransformStripCredentials
	// TransformRenameRepository replaces the repository name with the target library name.
	TransformRenameRepository
)

func (t Transform) String() string {
	switch t {
	case TransformStripCredentials:
		return "strip-credentials"
	case TransformRenameRepository:
		return "rename-repository"
	default:
		return "none"
	}
}

// Artifact is a file rules_jvm_external generates under
// <output_base>/external/<repo>/ that belongs in the frozen archive.
type Artifact struct {
	Name      string
	Required  bool
	Transform Transform
}

// FrozenArtifacts returns the generated files in archive order.
func FrozenArtifacts() []Artifact {
	return []Artifact{
		{Name: "outdated.sh"},
		{Name: "outdated.artifacts"},
		{Name: "outdated.repositories"},
		{Name: "compat_repository.bzl"},
		{Name: DefsFile, Required: true, Transform: TransformStripCredentials},
		{Name: CompatFile, Transform: TransformRenameRepository},
		{Name: BuildFile, Required: true},
	}
}

// Apply rewrites content according to the artifact's transform.
func (a Artifact) Apply(content []byte, settings *Settings) []byte {
	switch a.Transform {
	case TransformStripCredentials:
		return []byte(JoinLines(StripCredentialLines(SplitLines(string(content)))))
	case TransformRenameRepository:
		lines := RenameRepository(SplitLines(string(content)), settings.Repo, settings.TargetName())
		return []byte(JoinLines(lines))
	default:
		return content
	}
}

// ArchiveEntry is a file ready to be written into the frozen archive.
type ArchiveEntry struct {
	Name       string
	Content    []byte
	SourceSize int
	Transform  Transform
}

// ArchivedEntry describes an entry read back from a written archive.
type ArchivedEntry struct {
	Name           string
	Modified       time.Time
	Method         uint16
	Size           uint64
	CompressedSize uint64
}

// FreezeResult summarizes a completed freeze.
type FreezeResult struct {
	OutputBase  string
	ArtifactDir string
	ArchivePath string
	Entries     []ArchiveEntry
	Archived    []ArchivedEntry
}
