// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mcpconfig/mcp-config/pkg/fileutils"
)

// BackupTimeFormat is the timestamp layout used in backup file names.
const BackupTimeFormat = "20060102_150405"

// BackupName returns the file name of a backup taken at now.
func BackupName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.json", prefix, now.Format(BackupTimeFormat))
}

// Backup copies the file at path to {prefix}_{YYYYMMDD_HHMMSS}.json in the
// same directory and returns the backup path. When path does not exist
// there is nothing to protect and path itself is returned. Backups are
// never pruned.
func Backup(path, prefix string, now time.Time) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	backupPath := filepath.Join(filepath.Dir(path), BackupName(prefix, now))
	if err := fileutils.CopyFile(path, backupPath, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("failed to back up %s: %w", path, err)
	}
	return backupPath, nil
}
