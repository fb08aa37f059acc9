package errors

import (
	"errors"
	"syscall"
)

// Category represents the type of error for display and handling purposes.
type Category int

const (
	// CategoryUnknown is the default for unclassified errors.
	CategoryUnknown Category = iota
	// CategoryUser indicates an error the user can fix (bad input, unknown key).
	CategoryUser
	// CategorySystem indicates a storage or platform error (disk full, read-only).
	CategorySystem
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategorySystem:
		return "system"
	default:
		return "unknown"
	}
}

// Classify determines the category of an error.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	if IsUserError(err) {
		return CategoryUser
	}
	if IsSystemError(err) || isSystemLevel(err) {
		return CategorySystem
	}
	return CategoryUnknown
}

// isSystemLevel checks if an error is a system-level error.
func isSystemLevel(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENOSPC, syscall.EACCES, syscall.EPERM, syscall.EIO, syscall.EROFS:
			return true
		}
	}

	return errors.Is(err, ErrDiskFull) ||
		errors.Is(err, ErrStorageUnavailable) ||
		errors.Is(err, ErrUnsupported)
}
