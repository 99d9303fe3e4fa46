//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/freezedeps/internal/domain/entities"
	"github.com/rios0rios0/freezedeps/internal/domain/repositories"
)

// StubArchiveRepository implements repositories.ArchiveRepository without touching a filesystem.
type StubArchiveRepository struct {
	// --- Write ---
	WriteErr    error
	WritePaths  []string
	WrittenWith [][]entities.ArchiveEntry

	// --- List ---
	Listed  []entities.ArchivedEntry
	ListErr error
}

var _ repositories.ArchiveRepository = (*StubArchiveRepository)(nil)

func (s *StubArchiveRepository) Write(path string, entries []entities.ArchiveEntry) error {
	s.WritePaths = append(s.WritePaths, path)
	s.WrittenWith = append(s.WrittenWith, entries)
	return s.WriteErr
}

func (s *StubArchiveRepository) List(_ string) ([]entities.ArchivedEntry, error) {
	return s.Listed, s.ListErr
}
