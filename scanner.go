package content11

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// findSourceFiles walks dir collecting every file with the given extension.
// Unreadable entries are reported and skipped; a half-missing tree should
// not abort discovery, the loader will fail on real problems.
func findSourceFiles(dir, fileExtension string) ([]string, error) {
	files := make([]string, 0, 100)

	myWalkFunc := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Warn("skipping unreadable path", "path", path, "err", err)
			return nil
		}

		if !info.IsDir() && strings.HasSuffix(path, fileExtension) {
			files = append(files, path)
		}
		return nil
	}

	err := filepath.Walk(dir, myWalkFunc)
	return files, err
}
