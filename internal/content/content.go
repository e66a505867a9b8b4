// Package content ships the Markdown corpus inside the binary and
// parses the YAML frontmatter each document starts with.
//
// The tree has two roots: guides/ for study guides and challenges/ for
// practice exercise templates. An alternate on-disk root can be
// supplied for content authoring; it must mirror the same layout.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed guides/*.md challenges/*.md
var embedded embed.FS

// FS returns the embedded content tree.
func FS() fs.FS {
	return embedded
}

// DirFS returns a content tree rooted at an on-disk directory, used to
// preview content changes without rebuilding. The directory must
// contain guides/ and challenges/ subdirectories.
func DirFS(root string) (fs.FS, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("content root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content root %s: not a directory", root)
	}
	return os.DirFS(root), nil
}
