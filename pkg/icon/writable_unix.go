//go:build unix

package icon

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"golang.org/x/sys/unix"
)

func checkWritable(path string) error {
	dir := filepath.Dir(path)
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return fmt.Errorf("write %s: %w", path, &fs.PathError{Op: "access", Path: dir, Err: err})
	}
	return nil
}
