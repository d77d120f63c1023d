//go:build windows

package file

import "os"

// renameio does not support Windows, where rename over an open file fails.
func writeFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}
