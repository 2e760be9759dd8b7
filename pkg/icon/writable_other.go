//go:build !unix

package icon

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

func checkWritable(path string) error {
	dir := filepath.Dir(path)
	fi, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("write %s: %w", path, &fs.PathError{Op: "stat", Path: dir, Err: syscall.ENOTDIR})
	}
	return nil
}
