// Package localfs persists test cases and test reports as one JSON file per
// record under a data directory.
package localfs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create data directory", goerr.V("dir", dir))
	}
	return nil
}

// sanitize makes a name segment safe to embed in a filename
func sanitize(v string) string {
	v = strings.ReplaceAll(v, "/", "_")
	return strings.ReplaceAll(v, "\\", "_")
}

func cleanJoin(dir, filename string) string {
	return filepath.Join(dir, filepath.Clean(filename))
}
