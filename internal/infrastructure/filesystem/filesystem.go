package filesystem

import (
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const writePerm = 0o644

// FileSystem is the capability surface configuration location needs: probe a
// path and read a file as text. Paths are expected to be absolute.
type FileSystem interface {
	Exists(path string) bool
	ReadText(path string) (string, error)
}

// WritableFileSystem extends FileSystem for callers that materialize files,
// such as the starter configuration writer.
type WritableFileSystem interface {
	FileSystem
	WriteText(path, content string) error
}

// BillyFS adapts a billy filesystem to FileSystem.
type BillyFS struct {
	fs billy.Filesystem
}

// NewOS returns a filesystem over the host.
func NewOS() *BillyFS {
	return &BillyFS{fs: osfs.New("/")}
}

// NewInMemory returns a filesystem holding the given path to content mapping.
// It backs locator and provider tests.
func NewInMemory(files map[string]string) (*BillyFS, error) {
	fs := memfs.New()

	for path, content := range files {
		if err := util.WriteFile(fs, path, []byte(content), writePerm); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
	}

	return &BillyFS{fs: fs}, nil
}

func (b *BillyFS) Exists(path string) bool {
	_, err := b.fs.Stat(path)

	return err == nil
}

func (b *BillyFS) ReadText(path string) (string, error) {
	file, err := b.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}

	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return string(data), nil
}

// WriteText writes content through a temporary file and renames it into
// place. Readers never observe a partially written file.
func (b *BillyFS) WriteText(path, content string) error {
	tmpPath := path + ".tmp"

	if err := util.WriteFile(b.fs, tmpPath, []byte(content), writePerm); err != nil {
		return fmt.Errorf("write temp file %s: %w", tmpPath, err)
	}

	if err := b.fs.Rename(tmpPath, path); err != nil {
		_ = b.fs.Remove(tmpPath)

		return fmt.Errorf("rename temp file to %s: %w", path, err)
	}

	return nil
}
