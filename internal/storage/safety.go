package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manav03panchal/pomotime/internal/errors"
)

const (
	// MinFreeSpace is the minimum free space required for write operations (10MB).
	MinFreeSpace = 10 * 1024 * 1024
	// MinFreeSpaceWarning is the threshold for warning about low disk space (50MB).
	MinFreeSpaceWarning = 50 * 1024 * 1024
)

// DiskSpaceInfo contains information about available disk space.
type DiskSpaceInfo struct {
	Path       string
	TotalBytes uint64
	FreeBytes  uint64
	UsedBytes  uint64
}

// FreePercent returns the percentage of free space.
func (d *DiskSpaceInfo) FreePercent() float64 {
	if d.TotalBytes == 0 {
		return 0
	}
	return float64(d.FreeBytes) / float64(d.TotalBytes) * 100
}

// CheckDiskSpace checks if there's enough disk space at the given path.
// Returns an error if free space is below MinFreeSpace.
func CheckDiskSpace(path string) error {
	return CheckDiskSpaceMin(path, MinFreeSpace)
}

// CheckDiskSpaceMin checks that at least minFree bytes are available at path.
// Paths whose free space cannot be determined pass.
func CheckDiskSpaceMin(path string, minFree uint64) error {
	info, err := GetDiskSpace(path)
	if err != nil {
		return nil
	}

	if info.FreeBytes < minFree {
		return errors.NewSystemError(
			fmt.Sprintf("insufficient disk space: %d MB free, need at least %d MB",
				info.FreeBytes/(1024*1024),
				minFree/(1024*1024)),
			errors.ErrDiskFull,
		)
	}

	return nil
}

// CheckDiskSpaceWarning checks disk space and returns a warning message if low.
// Returns empty string if disk space is adequate.
func CheckDiskSpaceWarning(path string, threshold uint64) string {
	if threshold == 0 {
		threshold = MinFreeSpaceWarning
	}
	info, err := GetDiskSpace(path)
	if err != nil {
		return ""
	}

	if info.FreeBytes < threshold {
		return fmt.Sprintf("Warning: Low disk space (%d MB free)", info.FreeBytes/(1024*1024))
	}

	return ""
}

// existingAncestor returns path or its nearest existing parent.
func existingAncestor(path string) string {
	for {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}

func diskFull(op string) error {
	return errors.NewSystemErrorWithOp(op, "disk full", errors.ErrDiskFull)
}

// SafeWrite performs a write operation with disk space check.
// It checks disk space before the write and wraps disk-full errors appropriately.
func SafeWrite(path string, data []byte, perm os.FileMode) error {
	if err := CheckDiskSpace(filepath.Dir(path)); err != nil {
		return err
	}

	// Write to a temp file, then rename
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".pomotime-*.tmp")
	if err != nil {
		if isDiskFullError(err) {
			return diskFull("create temp file")
		}
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		if isDiskFullError(err) {
			return diskFull("write")
		}
		return fmt.Errorf("failed to write data: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		if isDiskFullError(err) {
			return diskFull("sync")
		}
		return fmt.Errorf("failed to sync data: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}

// EnsureDirectory creates a directory with safe permissions if it doesn't exist.
func EnsureDirectory(path string) error {
	if err := CheckDiskSpace(filepath.Dir(path)); err != nil {
		return err
	}

	if err := os.MkdirAll(path, 0700); err != nil {
		if isDiskFullError(err) {
			return diskFull("mkdir")
		}
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return nil
}
