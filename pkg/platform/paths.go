package platform

import (
	"os"
	"path/filepath"
)

// PathProvider locates the per-product system directory holding files written
// by previous sessions, such as the persisted frame record.
type PathProvider interface {
	SystemDir() string
}

// PathFunc adapts a plain function to the PathProvider interface.
type PathFunc func() string

func (f PathFunc) SystemDir() string {
	if f == nil {
		return ""
	}
	return f()
}

// DefaultPaths resolves the system directory under the OS user configuration
// directory, namespaced by product name.
type DefaultPaths struct {
	// Product is the directory name, e.g. "MyEditor".
	Product string
}

// SystemDir returns <user-config-dir>/<product>/system, or "" if the user
// configuration directory cannot be determined.
func (p DefaultPaths) SystemDir() string {
	base, err := os.UserConfigDir()
	if err != nil || p.Product == "" {
		return ""
	}
	return filepath.Join(base, p.Product, "system")
}
