// Package filex locates well-known user directories for gopress.
//
// Package: filex
// Title: User Directory Lookup
// Description: Resolves the current user's documents directory from the
//              XDG user-dirs environment or the home directory.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
//
// Lookup order:
//
//  1. XDG_DOCUMENTS_DIR when set to an absolute path ($HOME is expanded)
//  2. $HOME/Documents
//
// DocumentsDirectory reports absence with a false second result when no home
// directory is known. It never creates the directory; callers that write into
// it use EnsureDir.
//
//	if dir, ok := filex.DocumentsDirectory(); ok {
//	    path := filepath.Join(dir, "gopress", "defaults.db")
//	}
package filex
