// File: filex.go
// Title: User Directory Lookup
// Description: Documents directory resolution and directory creation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package filex

import (
	"os"
	"path/filepath"
	"strings"

	gperror "github.com/msto63/gopress/core/error"
)

// DocumentsEnv names the XDG user-dirs variable for the documents directory
const DocumentsEnv = "XDG_DOCUMENTS_DIR"

// DefaultDirPerm is used by EnsureDir
const DefaultDirPerm os.FileMode = 0o755

// DocumentsDirectory returns the current user's documents directory
func DocumentsDirectory() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", false
	}

	if dir := expandHome(os.Getenv(DocumentsEnv), home); filepath.IsAbs(dir) {
		return filepath.Clean(dir), true
	}
	return filepath.Join(home, "Documents"), true
}

// expandHome replaces a leading $HOME or ~ with home
func expandHome(path, home string) string {
	for _, prefix := range []string{"$HOME", "${HOME}", "~"} {
		if path == prefix {
			return home
		}
		if strings.HasPrefix(path, prefix+"/") {
			return filepath.Join(home, path[len(prefix)+1:])
		}
	}
	return path
}

// Exists reports whether path exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path is an existing directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDir creates dir and its parents when missing
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, DefaultDirPerm); err != nil {
		return gperror.Wrap(err, "failed to create directory").
			WithCode(gperror.CodeIOError).
			WithOperation("filex.EnsureDir").
			WithDetail("directory", dir)
	}
	return nil
}
