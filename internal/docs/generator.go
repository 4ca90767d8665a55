// Package docs renders per-example markdown documentation and the aggregate
// index. Each document embeds the example's contract and test sources inside
// a fixed section structure.
package docs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/cipherlab/fhevm-examples/internal/console"
	"github.com/cipherlab/fhevm-examples/internal/registry"
)

// SummaryFilename is the aggregate index written in batch mode.
const SummaryFilename = "SUMMARY.md"

// Document is one rendered markdown file.
type Document struct {
	Example registry.Example
	Path    string // where the document was written
	Content []byte
}

// ItemFailure records one example that could not be documented in a batch.
type ItemFailure struct {
	Name string
	Err  error
}

// BatchError reports a partially failed batch. Documents for the remaining
// examples were still written.
type BatchError struct {
	Failures []ItemFailure
}

func (e *BatchError) Error() string {
	names := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		names[i] = f.Name
	}
	return fmt.Sprintf("failed to document %d example(s): %s", len(e.Failures), strings.Join(names, ", "))
}

// Generator renders documentation. Root is the directory against which
// descriptor paths resolve; OutDir is where documents are written.
type Generator struct {
	reg    *registry.Registry
	root   string
	outDir string
	con    *console.Printer
}

// NewGenerator creates a documentation generator.
func NewGenerator(reg *registry.Registry, root, outDir string, con *console.Printer) *Generator {
	return &Generator{reg: reg, root: root, outDir: outDir, con: con}
}

// GenerateOne renders and writes the document for a single named example.
// A missing source file is an error; nothing is written for that example.
func (g *Generator) GenerateOne(name string) (*Document, error) {
	ex, err := g.reg.Lookup(name)
	if err != nil {
		return nil, err
	}
	return g.generate(ex)
}

// GenerateAll renders documents for every registered example in declaration
// order, then writes the aggregate summary. One example's failure does not
// stop the batch; the summary always lists every registered example. If any
// example failed, the successful documents are returned together with a
// *BatchError.
func (g *Generator) GenerateAll() ([]*Document, error) {
	return g.generateBatch(g.reg.Examples(), true)
}

// GenerateMatching renders documents for every registered name matching the
// glob pattern. A pattern of "*" is equivalent to GenerateAll. A pattern
// without glob metacharacters is treated as an exact name, so unknown names
// are still reported with the full registered list.
func (g *Generator) GenerateMatching(pattern string) ([]*Document, error) {
	if pattern == "*" {
		return g.GenerateAll()
	}
	if !strings.ContainsAny(pattern, "*?[{") {
		doc, err := g.GenerateOne(pattern)
		if err != nil {
			return nil, err
		}
		return []*Document{doc}, nil
	}

	var matched []registry.Example
	for _, ex := range g.reg.Examples() {
		ok, err := doublestar.Match(pattern, ex.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if ok {
			matched = append(matched, ex)
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("no examples match pattern %q", pattern)
	}

	return g.generateBatch(matched, false)
}

func (g *Generator) generateBatch(examples []registry.Example, withSummary bool) ([]*Document, error) {
	if err := os.MkdirAll(g.outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating docs directory: %w", err)
	}

	var docs []*Document
	var failures []ItemFailure
	for _, ex := range examples {
		doc, err := g.generate(ex)
		if err != nil {
			g.con.Warnf("Skipping %s: %v", ex.Name, err)
			failures = append(failures, ItemFailure{Name: ex.Name, Err: err})
			continue
		}
		docs = append(docs, doc)
	}

	if withSummary {
		if err := g.writeSummary(); err != nil {
			return docs, err
		}
	}

	if len(failures) > 0 {
		return docs, &BatchError{Failures: failures}
	}
	g.con.Successf("Documented %d example(s) in %s", len(docs), g.outDir)
	return docs, nil
}

func (g *Generator) generate(ex registry.Example) (*Document, error) {
	contractSource, err := g.readSource(ex.ContractPath)
	if err != nil {
		return nil, fmt.Errorf("reading contract source: %w", err)
	}
	testSource, err := g.readSource(ex.TestPath)
	if err != nil {
		return nil, fmt.Errorf("reading test source: %w", err)
	}

	content := assemble(ex, contractSource, testSource)

	if err := os.MkdirAll(g.outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating docs directory: %w", err)
	}
	path := filepath.Join(g.outDir, ex.DocFilename())
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}

	slog.Debug("wrote document", "example", ex.Name, "path", path, "bytes", len(content))
	g.con.Infof("Documented %s -> %s", ex.Name, path)

	return &Document{Example: ex, Path: path, Content: []byte(content)}, nil
}

func (g *Generator) readSource(rel string) (string, error) {
	data, err := os.ReadFile(filepath.Join(g.root, filepath.FromSlash(rel)))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) writeSummary() error {
	content := assembleSummary(g.reg.Examples())
	path := filepath.Join(g.outDir, SummaryFilename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	g.con.Infof("Wrote index %s", path)
	return nil
}
