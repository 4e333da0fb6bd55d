// Package filex contains small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureAppDir creates (if necessary) and returns an application
// subdirectory of the user's config dir, e.g. ~/.config/roadcase.
// Falls back to a directory under the current working directory when the
// user config dir cannot be resolved.
func EnsureAppDir(appName string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		base, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve base dir: %w", err)
		}
	}

	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
