// Package appinfo loads the product descriptor used during startup: product
// name, version, and splash art locations. The descriptor is a small YAML
// file shipped next to the application binary.
package appinfo

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// ErrMalformed marks descriptors that were read but could not be understood,
// as opposed to files that could not be read at all. Test with errors.Is.
var ErrMalformed = errors.New("malformed app descriptor")

// Info describes the product being started.
type Info struct {
	Name    string     `yaml:"name"`
	Version string     `yaml:"version"`
	EAP     bool       `yaml:"eap,omitempty"`
	Splash  SplashInfo `yaml:"splash,omitempty"`
}

// SplashInfo locates the splash art. EAPImage, when set, is used for
// early-access builds instead of Image.
type SplashInfo struct {
	Image    string `yaml:"image,omitempty"`
	EAPImage string `yaml:"eapImage,omitempty"`
}

// Load reads and validates the descriptor at path.
func Load(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read app descriptor: %w", err)
	}

	var info Info
	if err := yaml.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}
	return &info, nil
}

// Validate checks the descriptor for required fields and a well-formed
// version.
func (i *Info) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrMalformed)
	}
	if i.Version != "" && !semver.IsValid(canonical(i.Version)) {
		return fmt.Errorf("%w: invalid version %q", ErrMalformed, i.Version)
	}
	return nil
}

// SplashImagePath returns the splash art path for this build flavor, or ""
// when the product ships no splash.
func (i *Info) SplashImagePath() string {
	if i.EAP && i.Splash.EAPImage != "" {
		return i.Splash.EAPImage
	}
	return i.Splash.Image
}

// IsAtLeast reports whether the product version is at least min. Unversioned
// descriptors compare as older than everything.
func (i *Info) IsAtLeast(min string) bool {
	if i.Version == "" {
		return false
	}
	return semver.Compare(canonical(i.Version), canonical(min)) >= 0
}

// canonical normalizes a bare "2024.1.3" style version to the "v"-prefixed
// form semver expects.
func canonical(v string) string {
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
