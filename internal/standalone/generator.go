// Package standalone produces self-contained, independently buildable
// hardhat projects for single examples: the contract and test sources are
// copied verbatim and the surrounding project files are synthesized from the
// example's metadata and the pinned toolchain versions.
package standalone

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cipherlab/fhevm-examples/internal/config"
	"github.com/cipherlab/fhevm-examples/internal/console"
	"github.com/cipherlab/fhevm-examples/internal/registry"
)

// SourceMissingError reports that a descriptor's contract or test file does
// not exist on disk at generation time.
type SourceMissingError struct {
	Example string
	Path    string
}

func (e *SourceMissingError) Error() string {
	return fmt.Sprintf("source file for example %q missing: %s", e.Example, e.Path)
}

// GeneratedFile is one synthesized project file, path relative to the output
// directory.
type GeneratedFile struct {
	Path    string
	Content []byte
}

// Project describes a generated output directory.
type Project struct {
	Example registry.Example
	Dir     string
	Files   []string // every file written, relative to Dir
}

// Generator builds standalone projects. Root is the directory against which
// descriptor paths resolve.
type Generator struct {
	reg      *registry.Registry
	root     string
	cfg      config.Config
	versions config.Versions
	con      *console.Printer
}

// NewGenerator creates a standalone project generator.
func NewGenerator(reg *registry.Registry, root string, cfg config.Config, versions config.Versions, con *console.Printer) *Generator {
	return &Generator{reg: reg, root: root, cfg: cfg, versions: versions, con: con}
}

// Generate creates a standalone project for the named example under
// outputDir. An empty outputDir defaults to ./<name>. Nothing is written
// until the descriptor resolves and both source files are confirmed to
// exist; after that, existing files in outputDir are overwritten.
func (g *Generator) Generate(name, outputDir string) (*Project, error) {
	ex, err := g.reg.Lookup(name)
	if err != nil {
		return nil, err
	}

	if outputDir == "" {
		outputDir = "./" + ex.Name
	}

	contractSrc := filepath.Join(g.root, filepath.FromSlash(ex.ContractPath))
	testSrc := filepath.Join(g.root, filepath.FromSlash(ex.TestPath))
	for _, src := range []string{contractSrc, testSrc} {
		if _, err := os.Stat(src); err != nil {
			if os.IsNotExist(err) {
				return nil, &SourceMissingError{Example: ex.Name, Path: src}
			}
			return nil, fmt.Errorf("checking source file %s: %w", src, err)
		}
	}

	g.con.Infof("Generating standalone repository for %s in %s", ex.Name, outputDir)

	project := &Project{Example: ex, Dir: outputDir}

	copies := []struct {
		src string
		dst string
	}{
		{contractSrc, filepath.Join("contracts", ex.ContractBasename())},
		{testSrc, filepath.Join("test", ex.TestBasename())},
	}
	for _, c := range copies {
		dst := filepath.Join(outputDir, c.dst)
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", filepath.Dir(dst), err)
		}
		if err := copyFile(c.src, dst); err != nil {
			return nil, fmt.Errorf("copying %s: %w", c.src, err)
		}
		slog.Debug("copied source file", "from", c.src, "to", dst)
		project.Files = append(project.Files, c.dst)
	}

	files, err := g.renderProjectFiles(ex)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		dst := filepath.Join(outputDir, f.Path)
		if err := os.WriteFile(dst, f.Content, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", dst, err)
		}
		slog.Debug("wrote generated file", "path", dst, "bytes", len(f.Content))
		project.Files = append(project.Files, f.Path)
	}

	g.con.Successf("Standalone repository ready: %s", outputDir)
	return project, nil
}

// copyFile copies src to dst byte for byte.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
