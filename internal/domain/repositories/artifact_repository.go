package repositories

// ArtifactRepository reads files generated by the dependency resolver.
type ArtifactRepository interface {
	// Read returns the raw content of path. A missing file yields an error
	// matching fs.ErrNotExist.
	Read(path string) ([]byte, error)
}
