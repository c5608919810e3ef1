package arch

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/archup/archup/internal/messages"
)

// ReportLeftoverConfigs walks root for .pacnew and .pacsave files pacman
// leaves behind when it cannot merge a configuration file, and prints a
// header followed by each path. With no matches it prints nothing at all.
// The scan is advisory: traversal errors are skipped, never surfaced.
func ReportLeftoverConfigs(root string, out io.Writer) {
	var matches []string
	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".pacnew", ".pacsave":
			matches = append(matches, path)
		}
		return nil
	})

	if len(matches) == 0 {
		return
	}
	_, _ = fmt.Fprintf(out, "\n%s\n", messages.PacnewHeader)
	for _, path := range matches {
		_, _ = fmt.Fprintln(out, path)
	}
}
