package actions

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTarGz builds a small .tar.gz fixture containing a directory with a
// text file and an executable.
func writeTarGz(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)

	entries := []struct {
		name string
		mode int64
		body string
	}{
		{"tool-1.0/README.md", 0644, "docs\n"},
		{"tool-1.0/tool", 0755, "#!/bin/sh\necho tool\n"},
	}
	for _, e := range entries {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     e.name,
			Mode:     e.mode,
			Size:     int64(len(e.body)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(e.body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
}

func TestExtractTarGz(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "tool.tar.gz")
	writeTarGz(t, archive)

	dest := filepath.Join(dir, "out")
	require.NoError(t, EnsureDir(dest))

	top, err := Extract(archive, dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "tool-1.0"), top)

	data, err := os.ReadFile(filepath.Join(dest, "tool-1.0", "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "docs\n", string(data))

	info, err := os.Stat(filepath.Join(dest, "tool-1.0", "tool"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0111, "executable bit should survive extraction")
}

func TestExtractZip(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "tool.zip")

	f, err := os.Create(archive)
	require.NoError(t, err)
	zw := zip.NewWriter(f)

	hdr := &zip.FileHeader{Name: "tool-2.0/tool"}
	hdr.SetMode(0755)
	w, err := zw.CreateHeader(hdr)
	require.NoError(t, err)
	_, err = w.Write([]byte("binary"))
	require.NoError(t, err)

	w, err = zw.Create("tool-2.0/LICENSE")
	require.NoError(t, err)
	_, err = w.Write([]byte("MIT"))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	dest := filepath.Join(dir, "out")
	require.NoError(t, EnsureDir(dest))

	top, err := Extract(archive, dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "tool-2.0"), top)

	data, err := os.ReadFile(filepath.Join(dest, "tool-2.0", "LICENSE"))
	require.NoError(t, err)
	assert.Equal(t, "MIT", string(data))
}

func TestExtractSingleFileArchiveReturnsTheFile(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "flat.tar.gz")

	f, err := os.Create(archive)
	require.NoError(t, err)
	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	body := "just one binary"
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     "fzf",
		Mode:     0755,
		Size:     int64(len(body)),
		Typeflag: tar.TypeReg,
	}))
	_, err = tw.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	require.NoError(t, f.Close())

	dest := filepath.Join(dir, "out")
	require.NoError(t, EnsureDir(dest))

	// Archives without a wrapping directory resolve to the file itself.
	top, err := Extract(archive, dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "fzf"), top)

	found, err := FindExecutable(top, "fzf")
	require.NoError(t, err)
	assert.Equal(t, top, found)
}

func TestExtractRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "tool.rar")
	require.NoError(t, os.WriteFile(archive, []byte("not really"), 0644))

	_, err := Extract(archive, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported archive format")
}

func TestIsArchive(t *testing.T) {
	assert.True(t, IsArchive("a.tar.gz"))
	assert.True(t, IsArchive("a.tgz"))
	assert.True(t, IsArchive("a.tar.xz"))
	assert.True(t, IsArchive("a.zip"))
	assert.True(t, IsArchive("a.7z"))
	assert.False(t, IsArchive("fzf-linux_amd64"))
	assert.False(t, IsArchive("a.pkg"))
}
