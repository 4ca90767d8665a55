package config

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed versions.toml
var versionsTOML string

// Versions holds the dependency and compiler version pins written into
// generated standalone projects. The canonical values ship embedded in the
// binary so generation never consults the network or a package manager.
type Versions struct {
	Solidity        string            `toml:"solidity"`
	EVMVersion      string            `toml:"evm_version"`
	Node            string            `toml:"node"`
	Dependencies    map[string]string `toml:"dependencies"`
	DevDependencies map[string]string `toml:"dev_dependencies"`
}

// LoadVersions parses the embedded version pins.
func LoadVersions() (Versions, error) {
	var v Versions
	if _, err := toml.Decode(versionsTOML, &v); err != nil {
		return v, fmt.Errorf("parsing embedded versions.toml: %w", err)
	}
	if v.Solidity == "" {
		return v, fmt.Errorf("embedded versions.toml missing solidity version")
	}
	return v, nil
}
