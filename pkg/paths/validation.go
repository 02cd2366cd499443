package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/luavend/pkg/errors"
)

// ValidatePath performs basic validation on a path.
// It checks for:
// - Empty paths
// - Null bytes
// - Excessive path length
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Common filesystem limit
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// ValidateAbsolute checks that a supplied path is absolute. Relative
// paths here are a caller contract violation, not a recoverable user
// error: the surrounding pipeline always hands us absolute paths.
func ValidateAbsolute(label, path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if !filepath.IsAbs(path) {
		return errors.Newf(errors.ErrPathNotAbsolute,
			"%s must be an absolute path, got %q", label, path)
	}
	return nil
}
