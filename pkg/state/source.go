package state

import (
	"github.com/spf13/afero"

	"github.com/AccelByte/extend-achievement-reminder/pkg/errors"
)

// Source supplies the raw runtime state document. The file is written by the save
// emulator; the store only reads it.
type Source interface {
	// Read returns the full current contents.
	Read() ([]byte, error)

	// Path identifies the source in logs and errors.
	Path() string
}

// FileSource reads the state document from a file on an afero filesystem.
type FileSource struct {
	fs   afero.Fs
	path string
}

// NewFileSource creates a FileSource for path. A nil fs means the host filesystem.
func NewFileSource(fs afero.Fs, path string) *FileSource {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileSource{fs: fs, path: path}
}

// Read returns the file contents, or a SOURCE_UNREADABLE error.
func (s *FileSource) Read() ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, errors.ErrSourceUnreadable(s.path, err)
	}
	return data, nil
}

// Path returns the file path.
func (s *FileSource) Path() string {
	return s.path
}
