package log

import (
	"os"
	"path/filepath"

	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/ytgrab-cli/ytgrab/filesystem"
)

// severityFileHook appends every emitted entry to the log file collecting its severity.
// Files are opened lazily and kept open for the lifetime of the process.
type severityFileHook struct {
	dir   string
	files map[string]afero.File
}

func newSeverityFileHook(dir string) (*severityFileHook, error) {
	if dir == "" {
		return nil, os.ErrNotExist
	}
	return &severityFileHook{
		dir:   dir,
		files: make(map[string]afero.File),
	}, nil
}

// Levels implements logrus.Hook.
func (h *severityFileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (h *severityFileHook) Fire(e *logrus.Entry) error {
	name := sinkFor(e)

	f, ok := h.files[name]
	if !ok {
		var err error
		f, err = filesystem.API().OpenFile(
			filepath.Join(h.dir, name),
			os.O_RDWR|os.O_CREATE|os.O_APPEND,
			0666,
		)
		if err != nil {
			return err
		}
		h.files[name] = f
	}

	line, err := e.String()
	if err != nil {
		return err
	}

	_, err = f.WriteString(line)
	return err
}
