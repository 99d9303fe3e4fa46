package filesystem

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// ArtifactRepository reads generated files through a billy filesystem.
type ArtifactRepository struct {
	fs billy.Filesystem
}

// NewArtifactRepository creates a repository reading from fs.
func NewArtifactRepository(fs billy.Filesystem) *ArtifactRepository {
	return &ArtifactRepository{fs: fs}
}

// Read returns the raw content of path.
func (it *ArtifactRepository) Read(path string) ([]byte, error) {
	return util.ReadFile(it.fs, path)
}
