package pack

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// ManifestFile is the manifest filename at the source pack root.
const ManifestFile = "pack.yaml"

// Manifest describes a source pack.
type Manifest struct {
	Name          string `yaml:"name"`
	Version       string `yaml:"version"`
	Description   string `yaml:"description"`
	MinCLIVersion string `yaml:"min_cli_version"`
}

// Load reads the manifest from a source pack root. A missing or malformed
// manifest returns nil — packs are not required to ship one.
func Load(sourceRoot string) *Manifest {
	data, err := os.ReadFile(filepath.Join(sourceRoot, ManifestFile))
	if err != nil {
		return nil
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil
	}
	return &m
}

// CheckCompat compares the running CLI version against the manifest's
// min_cli_version and returns a warning string when the binary is too old.
// Dev builds and unparseable versions produce no warning.
func (m *Manifest) CheckCompat(current string) string {
	if m == nil || m.MinCLIVersion == "" {
		return ""
	}

	cv, err := parseSemver(current)
	if err != nil {
		return ""
	}
	min, err := parseSemver(m.MinCLIVersion)
	if err != nil {
		return ""
	}

	if cv.LessThan(min) {
		return fmt.Sprintf("pack %s expects CLI %s or newer (running %s); some content may not translate cleanly",
			m.Name, m.MinCLIVersion, current)
	}
	return ""
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
