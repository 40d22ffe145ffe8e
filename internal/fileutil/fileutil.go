// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteAtomic writes data to path through a temporary file in the same
// directory, so readers never observe a partially written key file.
func WriteAtomic(path string, data []byte, perm os.FileMode) (err error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	tmpName := tmpFile.Name()

	defer func() {
		if err != nil {
			tmpFile.Close()    //nolint:gosec // best-effort cleanup
			os.Remove(tmpName) //nolint:gosec // best-effort cleanup
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		return fmt.Errorf("writing temporary file: %w", err)
	}

	if err = tmpFile.Chmod(perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming temporary file: %w", err)
	}

	return nil
}
