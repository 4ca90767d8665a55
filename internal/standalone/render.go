package standalone

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/cipherlab/fhevm-examples/internal/registry"
)

//go:embed templates/hardhat.config.ts.tmpl
var hardhatConfigTemplate string

//go:embed templates/README.md.tmpl
var readmeTemplate string

var (
	hardhatTmpl = template.Must(template.New("hardhat.config.ts").Parse(hardhatConfigTemplate))
	readmeTmpl  = template.Must(template.New("README.md").Parse(readmeTemplate))
)

// renderProjectFiles synthesizes the four project files for an example. The
// output depends only on the descriptor and the configured version pins, so
// regeneration is byte-identical.
func (g *Generator) renderProjectFiles(ex registry.Example) ([]GeneratedFile, error) {
	hardhatConfig, err := g.renderHardhatConfig()
	if err != nil {
		return nil, err
	}

	packageJSON, err := g.renderPackageJSON(ex)
	if err != nil {
		return nil, err
	}

	tsconfig, err := renderTSConfig()
	if err != nil {
		return nil, err
	}

	readme, err := g.renderReadme(ex)
	if err != nil {
		return nil, err
	}

	return []GeneratedFile{
		{Path: "hardhat.config.ts", Content: hardhatConfig},
		{Path: "package.json", Content: packageJSON},
		{Path: "tsconfig.json", Content: tsconfig},
		{Path: "README.md", Content: readme},
	}, nil
}

func (g *Generator) renderHardhatConfig() ([]byte, error) {
	data := struct {
		NetworkName    string
		ChainID        int
		RPCURLEnvVar   string
		MnemonicEnvVar string
		Solidity       string
		EVMVersion     string
	}{
		NetworkName:    g.cfg.Network.Name,
		ChainID:        g.cfg.Network.ChainID,
		RPCURLEnvVar:   g.cfg.Network.RPCURLEnvVar,
		MnemonicEnvVar: g.cfg.Network.MnemonicEnvVar,
		Solidity:       g.versions.Solidity,
		EVMVersion:     g.versions.EVMVersion,
	}

	var buf bytes.Buffer
	if err := hardhatTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering hardhat.config.ts: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) renderPackageJSON(ex registry.Example) ([]byte, error) {
	pkg := map[string]any{
		"name":        g.cfg.PackagePrefix + "-" + ex.Name,
		"version":     "1.0.0",
		"description": ex.Description,
		"license":     "BSD-3-Clause-Clear",
		"scripts": map[string]string{
			"compile":   "hardhat compile",
			"test":      "hardhat test",
			"typecheck": "tsc --noEmit",
			"clean":     "hardhat clean",
		},
		"engines": map[string]string{
			"node": g.versions.Node,
		},
		"dependencies":    g.versions.Dependencies,
		"devDependencies": g.versions.DevDependencies,
	}

	// MarshalIndent sorts map keys, which keeps regeneration deterministic.
	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("rendering package.json: %w", err)
	}
	return append(data, '\n'), nil
}

func renderTSConfig() ([]byte, error) {
	tsconfig := map[string]any{
		"compilerOptions": map[string]any{
			"target":                           "es2020",
			"module":                           "commonjs",
			"moduleResolution":                 "node",
			"strict":                           true,
			"esModuleInterop":                  true,
			"resolveJsonModule":                true,
			"forceConsistentCasingInFileNames": true,
			"skipLibCheck":                     true,
			"outDir":                           "./dist",
		},
		"include": []string{"./test", "./types", "hardhat.config.ts"},
		"files":   []string{"hardhat.config.ts"},
	}

	data, err := json.MarshalIndent(tsconfig, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("rendering tsconfig.json: %w", err)
	}
	return append(data, '\n'), nil
}

func (g *Generator) renderReadme(ex registry.Example) ([]byte, error) {
	data := struct {
		PackageName    string
		Description    string
		ContractFile   string
		TestFile       string
		NetworkName    string
		RPCURLEnvVar   string
		MnemonicEnvVar string
	}{
		PackageName:    g.cfg.PackagePrefix + "-" + ex.Name,
		Description:    ex.Description,
		ContractFile:   ex.ContractBasename(),
		TestFile:       ex.TestBasename(),
		NetworkName:    g.cfg.Network.Name,
		RPCURLEnvVar:   g.cfg.Network.RPCURLEnvVar,
		MnemonicEnvVar: g.cfg.Network.MnemonicEnvVar,
	}

	var buf bytes.Buffer
	if err := readmeTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering README.md: %w", err)
	}
	return buf.Bytes(), nil
}
