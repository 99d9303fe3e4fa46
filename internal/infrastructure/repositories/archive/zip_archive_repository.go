package archive

import (
	"archive/zip"
	"compress/flate"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/freezedeps/internal/domain/entities"
)

const entryFileMode = 0o644

// ZipArchiveRepository writes deflate-compressed zip archives whose bytes
// depend only on the entries: names and contents in the given order, a fixed
// timestamp, and a fixed file mode.
type ZipArchiveRepository struct {
	fs billy.Filesystem
}

// NewZipArchiveRepository creates a repository writing through fs.
func NewZipArchiveRepository(fs billy.Filesystem) *ZipArchiveRepository {
	return &ZipArchiveRepository{fs: fs}
}

// Write creates or truncates the archive at path. The partially written file
// is removed if any entry fails.
func (it *ZipArchiveRepository) Write(path string, entries []entities.ArchiveEntry) error {
	f, err := it.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create archive file: %w", err)
	}

	writeErr := writeEntries(f, entries)
	closeErr := f.Close()
	if writeErr == nil && closeErr != nil {
		writeErr = fmt.Errorf("failed to close archive file: %w", closeErr)
	}
	if writeErr != nil {
		if removeErr := it.fs.Remove(path); removeErr != nil {
			logger.Warnf("Failed to remove incomplete archive %s: %v", path, removeErr)
		}
		return writeErr
	}

	return nil
}

// List reads the central directory of the archive at path.
func (it *ZipArchiveRepository) List(path string) ([]entities.ArchivedEntry, error) {
	info, err := it.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat archive: %w", err)
	}

	f, err := it.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	r, err := zip.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}

	result := make([]entities.ArchivedEntry, 0, len(r.File))
	for _, zf := range r.File {
		result = append(result, entities.ArchivedEntry{
			Name:           zf.Name,
			Modified:       zf.Modified,
			Method:         zf.Method,
			Size:           zf.UncompressedSize64,
			CompressedSize: zf.CompressedSize64,
		})
	}
	return result, nil
}

func writeEntries(w io.Writer, entries []entities.ArchiveEntry) error {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})

	for _, entry := range entries {
		//nolint:exhaustruct // remaining header fields are derived by the writer
		header := &zip.FileHeader{
			Name:     entry.Name,
			Method:   zip.Deflate,
			Modified: entities.FixedModTime,
		}
		header.SetMode(entryFileMode)

		ew, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("failed to write header for %s: %w", entry.Name, err)
		}
		if _, err = ew.Write(entry.Content); err != nil {
			return fmt.Errorf("failed to write content for %s: %w", entry.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}
