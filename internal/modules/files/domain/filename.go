package domain

import (
	"fmt"
	"path"
	"strings"
)

// NormalizeFileName cleans an uploaded filename as a pure string transform:
// backslashes are folded to forward slashes, redundant separators and
// "."/".." segments are collapsed, and any name that still contains ".."
// afterwards is rejected. The name is never used as a filesystem path; the
// check is defense in depth against traversal sequences ending up in storage.
func NormalizeFileName(name string) (string, error) {
	cleaned := path.Clean(strings.ReplaceAll(name, "\\", "/"))
	if cleaned == "" || cleaned == "." || cleaned == "/" {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	if strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("%w: %s", ErrInvalidFileName, name)
	}
	return cleaned, nil
}
