//go:build !windows

package file

import (
	"os"

	"github.com/google/renameio/v2"
)

// writeFile replaces path with data via a synced temporary file and rename.
func writeFile(path string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(path, data, perm)
}
