package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/LeoCommon/modemcore/pkg/log"
	"go.uber.org/zap"
)

var ErrPathIsDir = errors.New("supplied path is a directory")

// MkdirP creates the directory of filePath and all its parents
func MkdirP(filePath string, perm fs.FileMode) error {
	absDirPath, err := filepath.Abs(filepath.Dir(filePath))
	if err != nil {
		return err
	}

	return os.MkdirAll(absDirPath, perm)
}

// WriteAtomic replaces filePath with data. Readers see either the old or the
// new content, never a partial write. Missing directories are created.
func WriteAtomic(filePath string, data []byte, perm fs.FileMode) error {
	if s, err := os.Stat(filePath); err == nil && s.IsDir() {
		return ErrPathIsDir
	}

	if err := MkdirP(filePath, 0750); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(filePath), "."+filepath.Base(filePath)+".*")
	if err != nil {
		return err
	}

	// Remove the temp file unless the rename went through
	defer func(name string) {
		if rmErr := os.Remove(name); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			log.Warn("could not remove temporary file", zap.String("file", name), zap.Error(rmErr))
		}
	}(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), filePath)
}
