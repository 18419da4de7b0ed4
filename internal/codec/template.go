package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExpandTemplate substitutes a buffer name into a batch-save path template.
// The template must contain exactly one %s placeholder and no other verbs;
// literal percent signs can be written as %%.
func ExpandTemplate(template, name string) (string, error) {
	if err := ValidateTemplate(template); err != nil {
		return "", err
	}
	return fmt.Sprintf(template, name), nil
}

// ValidateTemplate reports whether a path template is usable for batch
// saving: exactly one %s, nothing else interpreted by the formatter.
func ValidateTemplate(template string) error {
	stripped := strings.ReplaceAll(template, "%%", "")
	if n := strings.Count(stripped, "%s"); n != 1 {
		return fmt.Errorf("save template %q must contain exactly one %%s placeholder, found %d", template, n)
	}
	if rest := strings.ReplaceAll(stripped, "%s", ""); strings.ContainsRune(rest, '%') {
		return fmt.Errorf("save template %q may only use the %%s placeholder", template)
	}
	return nil
}

// ReplaceExt swaps the path's extension for the format's canonical one.
// Paths without an extension get one appended.
func ReplaceExt(path string, f Format) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + f.Extension()
}
