//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// NewArtifactFilesystem returns an in-memory filesystem holding files under dir.
func NewArtifactFilesystem(dir string, files map[string]string) (billy.Filesystem, error) {
	fs := memfs.New()
	for name, content := range files {
		if err := util.WriteFile(fs, filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return nil, err
		}
	}
	return fs, nil
}
