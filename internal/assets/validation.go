package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects names that could reach outside the embedded
// tree. Asset names are always forward-slash relative paths.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q contains path traversal", ErrInvalidAssetName, name)
	}
	if strings.HasPrefix(name, "/") {
		return fmt.Errorf("%w: %q is absolute", ErrInvalidAssetName, name)
	}
	if strings.Contains(name, "\\") {
		return fmt.Errorf("%w: %q contains backslash", ErrInvalidAssetName, name)
	}
	return nil
}
