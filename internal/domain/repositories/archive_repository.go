package repositories

import "github.com/rios0rios0/freezedeps/internal/domain/entities"

// ArchiveRepository writes and inspects frozen archives.
type ArchiveRepository interface {
	// Write creates or replaces the archive at path with entries, in order.
	// No archive is left behind when writing fails.
	Write(path string, entries []entities.ArchiveEntry) error

	// List returns the entries of the archive at path, in archive order.
	List(path string) ([]entities.ArchivedEntry, error)
}
