// Package oserr translates file-system errors into descriptive
// messages at the I/O boundary, keeping the original error in the
// chain for errors.Is checks.
package oserr

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Translate maps err onto a descriptive error for the given operation
// and path. Each recognized OS error code gets its own message;
// unrecognized errors fall through to a generic "operation failed"
// wrapper. A nil err returns nil.
func Translate(op, path string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("cannot %s %s: path does not exist: %w", op, path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("cannot %s %s: permission denied: %w", op, path, err)
	case errors.Is(err, syscall.EISDIR):
		return fmt.Errorf("cannot %s %s: target is a directory: %w", op, path, err)
	case errors.Is(err, syscall.ENOTDIR):
		return fmt.Errorf("cannot %s %s: a path component is not a directory: %w", op, path, err)
	case errors.Is(err, syscall.ENOSPC):
		return fmt.Errorf("cannot %s %s: no space left on device: %w", op, path, err)
	case errors.Is(err, syscall.EROFS):
		return fmt.Errorf("cannot %s %s: file system is read-only: %w", op, path, err)
	case errors.Is(err, syscall.ENAMETOOLONG):
		return fmt.Errorf("cannot %s %s: file name too long: %w", op, path, err)
	default:
		return fmt.Errorf("cannot %s %s: operation failed: %w", op, path, err)
	}
}
