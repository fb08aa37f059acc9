package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/manav03panchal/pomotime/internal/logging"
)

// corruptionPatterns are substrings of Badger and SQLite errors that mean
// the data on disk is damaged.
var corruptionPatterns = []string{
	"checksum mismatch",
	"corrupt",
	"malformed",
	"unexpected eof",
	"bad magic",
	"truncated",
	"not a database",
}

// IsDatabaseCorrupted checks if the given error indicates database corruption.
func IsDatabaseCorrupted(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	for _, pattern := range corruptionPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// IsLocked reports whether err means another process holds the database.
func IsLocked(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "another process") ||
		strings.Contains(errStr, "resource temporarily unavailable") ||
		strings.Contains(errStr, "database is locked")
}

// CreateBackup copies the database at dbPath into a timestamped sibling
// "backups" directory and returns the backup path.
func CreateBackup(dbPath string) (string, error) {
	if dbPath == "" {
		return "", fmt.Errorf("database path is empty")
	}

	backupDir := filepath.Join(filepath.Dir(dbPath), "backups")
	if err := os.MkdirAll(backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	backupPath := filepath.Join(backupDir, fmt.Sprintf("%s-backup-%s", filepath.Base(dbPath), timestamp))

	if err := copyPath(dbPath, backupPath); err != nil {
		return "", fmt.Errorf("failed to copy database: %w", err)
	}

	logging.Info("database backup created", logging.KeyOperation, "backup", logging.KeyPath, backupPath)
	return backupPath, nil
}

// copyPath copies a file or a directory tree.
func copyPath(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if !srcInfo.IsDir() {
		data, err := os.ReadFile(src)
		if err != nil {
			return err
		}
		return os.WriteFile(dst, data, srcInfo.Mode())
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := copyPath(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
