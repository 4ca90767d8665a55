package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the overlay file looked up in the working directory.
const DefaultConfigFile = ".fhevm-examples.yaml"

// Config carries the knobs shared by both generators. Everything has a
// working default; a config file only overrides what it mentions.
type Config struct {
	DocsDir       string        `yaml:"docs_dir"`
	PackagePrefix string        `yaml:"package_prefix"`
	LogLevel      string        `yaml:"log_level,omitempty"`
	Network       NetworkConfig `yaml:"network"`
}

// NetworkConfig holds the literals written into generated hardhat configs.
// The env var names are referenced by the generated file, never read by the
// generators themselves.
type NetworkConfig struct {
	Name           string `yaml:"name"`
	ChainID        int    `yaml:"chain_id"`
	RPCURLEnvVar   string `yaml:"rpc_url_env_var"`
	MnemonicEnvVar string `yaml:"mnemonic_env_var"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		DocsDir:       "docs",
		PackagePrefix: "fhevm-example",
		Network: NetworkConfig{
			Name:           "sepolia",
			ChainID:        11155111,
			RPCURLEnvVar:   "SEPOLIA_RPC_URL",
			MnemonicEnvVar: "MNEMONIC",
		},
	}
}

// Load reads and parses a config file, overlaying it on the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	// Re-apply defaults for values the file cleared
	if cfg.DocsDir == "" {
		cfg.DocsDir = "docs"
	}
	if cfg.PackagePrefix == "" {
		cfg.PackagePrefix = "fhevm-example"
	}
	if cfg.Network.Name == "" {
		cfg.Network.Name = "sepolia"
	}
	if cfg.Network.ChainID == 0 {
		cfg.Network.ChainID = 11155111
	}
	if cfg.Network.RPCURLEnvVar == "" {
		cfg.Network.RPCURLEnvVar = "SEPOLIA_RPC_URL"
	}
	if cfg.Network.MnemonicEnvVar == "" {
		cfg.Network.MnemonicEnvVar = "MNEMONIC"
	}

	return cfg, nil
}

// LoadOptional loads DefaultConfigFile from the working directory if it
// exists, and the plain defaults otherwise.
func LoadOptional() (Config, error) {
	if _, err := os.Stat(DefaultConfigFile); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("checking config file: %w", err)
	}
	return Load(DefaultConfigFile)
}
