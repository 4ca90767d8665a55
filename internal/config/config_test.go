package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cipherlab/fhevm-examples/internal/config"
)

func TestLoadVersions(t *testing.T) {
	v, err := config.LoadVersions()
	if err != nil {
		t.Fatalf("LoadVersions failed: %v", err)
	}

	if v.Solidity == "" {
		t.Error("expected non-empty solidity version")
	}
	if v.EVMVersion == "" {
		t.Error("expected non-empty evm version")
	}
	if _, ok := v.Dependencies["@fhevm/solidity"]; !ok {
		t.Error("expected @fhevm/solidity in dependencies")
	}
	if _, ok := v.DevDependencies["hardhat"]; !ok {
		t.Error("expected hardhat in dev dependencies")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.DocsDir != "docs" {
		t.Errorf("expected docs dir 'docs', got %q", cfg.DocsDir)
	}
	if cfg.PackagePrefix != "fhevm-example" {
		t.Errorf("expected prefix 'fhevm-example', got %q", cfg.PackagePrefix)
	}
	if cfg.Network.ChainID != 11155111 {
		t.Errorf("expected sepolia chain id, got %d", cfg.Network.ChainID)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	cfgYaml := `docs_dir: site
network:
  name: localhost
  chain_id: 31337
`

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte(cfgYaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DocsDir != "site" {
		t.Errorf("expected overridden docs dir 'site', got %q", cfg.DocsDir)
	}
	if cfg.Network.Name != "localhost" {
		t.Errorf("expected overridden network 'localhost', got %q", cfg.Network.Name)
	}
	if cfg.Network.ChainID != 31337 {
		t.Errorf("expected overridden chain id 31337, got %d", cfg.Network.ChainID)
	}
	// Untouched fields keep their defaults
	if cfg.PackagePrefix != "fhevm-example" {
		t.Errorf("expected default prefix, got %q", cfg.PackagePrefix)
	}
	if cfg.Network.RPCURLEnvVar != "SEPOLIA_RPC_URL" {
		t.Errorf("expected default rpc env var, got %q", cfg.Network.RPCURLEnvVar)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
