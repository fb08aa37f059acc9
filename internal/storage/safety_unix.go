//go:build !windows

package storage

import (
	"errors"
	"fmt"
	"syscall"
)

// GetDiskSpace returns disk space information for the given path.
func GetDiskSpace(path string) (*DiskSpaceInfo, error) {
	path = existingAncestor(path)

	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return nil, fmt.Errorf("failed to get disk space: %w", err)
	}

	info := &DiskSpaceInfo{
		Path:       path,
		TotalBytes: stat.Blocks * uint64(stat.Bsize),
		FreeBytes:  stat.Bavail * uint64(stat.Bsize),
	}
	info.UsedBytes = info.TotalBytes - info.FreeBytes

	return info, nil
}

// isDiskFullError checks if an error indicates disk full condition.
func isDiskFullError(err error) bool {
	return err != nil && errors.Is(err, syscall.ENOSPC)
}
