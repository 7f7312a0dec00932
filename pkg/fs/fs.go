// Package fs holds the small set of file operations the run archive needs.
package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Creates dirPath and its parents if missing. Returns an error if the path
// exists and is not a directory.
func (lfs *LocalFileSystem) CreateDir(dirPath string, permission os.FileMode) error {
	stat, err := os.Stat(dirPath)
	if err == nil {
		if !stat.IsDir() {
			return fmt.Errorf("existing path %s isn't a directory", dirPath)
		}
		return nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error in getting directory stat %s : %w", dirPath, err)
	}

	if err := os.MkdirAll(dirPath, permission); err != nil {
		return fmt.Errorf("error in creating all directories %s : %w", dirPath, err)
	}
	return nil
}

// Opens filePath for appending, creating it and its parent directory when needed.
func (lfs *LocalFileSystem) OpenAppend(filePath string, permission os.FileMode) (*os.File, error) {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := lfs.CreateDir(dir, 0755); err != nil {
			return nil, err
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, permission)
	if err != nil {
		return nil, fmt.Errorf("error opening %s for append : %w", filePath, err)
	}
	return file, nil
}

// Read file contents.
func (lfs *LocalFileSystem) ReadFile(filePath string) ([]byte, error) {
	return os.ReadFile(filePath)
}

// Checks if a file exists or not.
func (lfs *LocalFileSystem) Exists(file string) (bool, error) {
	_, err := os.Stat(file)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
