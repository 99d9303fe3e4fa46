//go:build unit

package archive_test

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/freezedeps/internal/domain/entities"
	"github.com/rios0rios0/freezedeps/internal/infrastructure/repositories/archive"
)

func sampleEntries() []entities.ArchiveEntry {
	return []entities.ArchiveEntry{
		{Name: "defs.bzl", Content: []byte("def pinned_maven_install():\n    pass")},
		{Name: "BUILD", Content: []byte("exports_files([\"defs.bzl\"])\n")},
		{Name: "empty", Content: nil},
	}
}

func TestZipArchiveRepositoryWrite(t *testing.T) {
	t.Parallel()

	t.Run("should write entries in the given order with their content", func(t *testing.T) {
		t.Parallel()

		// given
		fs := memfs.New()
		repo := archive.NewZipArchiveRepository(fs)

		// when
		err := repo.Write("/out/deps.zip", sampleEntries())

		// then
		require.NoError(t, err)
		data, readErr := util.ReadFile(fs, "/out/deps.zip")
		require.NoError(t, readErr)
		r, zipErr := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		require.NoError(t, zipErr)
		require.Len(t, r.File, 3)
		for i, expected := range sampleEntries() {
			assert.Equal(t, expected.Name, r.File[i].Name)
			rc, openErr := r.File[i].Open()
			require.NoError(t, openErr)
			body, bodyErr := io.ReadAll(rc)
			require.NoError(t, bodyErr)
			assert.Equal(t, string(expected.Content), string(body))
		}
	})

	t.Run("should produce identical bytes for identical entries", func(t *testing.T) {
		t.Parallel()

		// given
		fs := memfs.New()
		repo := archive.NewZipArchiveRepository(fs)

		// when
		require.NoError(t, repo.Write("/a.zip", sampleEntries()))
		require.NoError(t, repo.Write("/b.zip", sampleEntries()))

		// then
		a, err := util.ReadFile(fs, "/a.zip")
		require.NoError(t, err)
		b, err := util.ReadFile(fs, "/b.zip")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("should write through the host filesystem creating parent directories", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo := archive.NewZipArchiveRepository(osfs.New(dir))
		path := filepath.Join("java", "private", "deps.zip")

		// when
		err := repo.Write(path, sampleEntries())

		// then
		require.NoError(t, err)
		info, statErr := os.Stat(filepath.Join(dir, path))
		require.NoError(t, statErr)
		assert.Positive(t, info.Size())
	})

	t.Run("should replace an existing archive", func(t *testing.T) {
		t.Parallel()

		// given
		fs := memfs.New()
		repo := archive.NewZipArchiveRepository(fs)
		require.NoError(t, util.WriteFile(fs, "/deps.zip", bytes.Repeat([]byte("x"), 4096), 0o644))

		// when
		err := repo.Write("/deps.zip", sampleEntries()[:1])

		// then
		require.NoError(t, err)
		listed, listErr := repo.List("/deps.zip")
		require.NoError(t, listErr)
		require.Len(t, listed, 1)
		assert.Equal(t, "defs.bzl", listed[0].Name)
	})

	t.Run("should fail on an oversized entry name and leave no archive", func(t *testing.T) {
		t.Parallel()

		// given
		fs := memfs.New()
		repo := archive.NewZipArchiveRepository(fs)
		long := string(bytes.Repeat([]byte("n"), 1<<16))

		// when
		err := repo.Write("/deps.zip", []entities.ArchiveEntry{{Name: long}})

		// then
		require.Error(t, err)
		_, statErr := fs.Stat("/deps.zip")
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestZipArchiveRepositoryList(t *testing.T) {
	t.Parallel()

	t.Run("should report the fixed timestamp and deflate method for every entry", func(t *testing.T) {
		t.Parallel()

		// given
		fs := memfs.New()
		repo := archive.NewZipArchiveRepository(fs)
		require.NoError(t, repo.Write("/deps.zip", sampleEntries()))

		// when
		listed, err := repo.List("/deps.zip")

		// then
		require.NoError(t, err)
		require.Len(t, listed, 3)
		for _, entry := range listed {
			assert.True(t, entities.FixedModTime.Equal(entry.Modified), "entry %s has mod time %s", entry.Name, entry.Modified)
			assert.Equal(t, 1980, entry.Modified.Year())
			assert.Equal(t, time.January, entry.Modified.Month())
			assert.Equal(t, 1, entry.Modified.Day())
			assert.Equal(t, 0, entry.Modified.Hour())
			assert.Equal(t, zip.Deflate, entry.Method)
		}
		assert.Equal(t, uint64(len(sampleEntries()[0].Content)), listed[0].Size)
	})

	t.Run("should fail for a missing archive", func(t *testing.T) {
		t.Parallel()

		// given
		repo := archive.NewZipArchiveRepository(memfs.New())

		// when
		_, err := repo.List("/absent.zip")

		// then
		require.Error(t, err)
	})

	t.Run("should fail for a file that is not a zip", func(t *testing.T) {
		t.Parallel()

		// given
		fs := memfs.New()
		require.NoError(t, util.WriteFile(fs, "/not.zip", []byte("plain text"), 0o644))
		repo := archive.NewZipArchiveRepository(fs)

		// when
		_, err := repo.List("/not.zip")

		// then
		require.Error(t, err)
	})
}
