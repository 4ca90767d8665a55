package registry

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRegistryComplete(t *testing.T) {
	r := Default()

	if r.Len() == 0 {
		t.Fatal("default registry is empty")
	}

	for _, name := range r.Names() {
		ex, err := r.Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
			continue
		}
		if ex.ContractPath == "" {
			t.Errorf("example %q has empty contract path", name)
		}
		if ex.TestPath == "" {
			t.Errorf("example %q has empty test path", name)
		}
		if ex.Description == "" {
			t.Errorf("example %q has empty description", name)
		}
	}
}

func TestNamesDeclarationOrder(t *testing.T) {
	r := Default()

	names := r.Names()
	examples := r.Examples()
	if len(names) != len(examples) {
		t.Fatalf("Names returned %d entries, Examples returned %d", len(names), len(examples))
	}
	for i, ex := range examples {
		if names[i] != ex.Name {
			t.Errorf("position %d: Names says %q, Examples says %q", i, names[i], ex.Name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	r := Default()

	_, err := r.Lookup("does-not-exist")
	if err == nil {
		t.Fatal("expected error for unknown name")
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
	if notFound.Name != "does-not-exist" {
		t.Errorf("expected attempted name in error, got %q", notFound.Name)
	}
	if len(notFound.Known) != r.Len() {
		t.Errorf("expected %d known names in error, got %d", r.Len(), len(notFound.Known))
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]Example{
		{Name: "a", ContractPath: "contracts/A.sol", TestPath: "test/A.ts"},
		{Name: "a", ContractPath: "contracts/B.sol", TestPath: "test/B.ts"},
	})
	if err == nil {
		t.Fatal("expected error for duplicate names")
	}
}

func TestNewRejectsEmptyFields(t *testing.T) {
	cases := []struct {
		name string
		ex   Example
	}{
		{"empty name", Example{ContractPath: "contracts/A.sol", TestPath: "test/A.ts"}},
		{"empty contract path", Example{Name: "a", TestPath: "test/A.ts"}},
		{"empty test path", Example{Name: "a", ContractPath: "contracts/A.sol"}},
	}

	for _, tc := range cases {
		if _, err := New([]Example{tc.ex}); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestDocFilename(t *testing.T) {
	ex := Example{Name: "fhe-add"}
	if got := ex.DocFilename(); got != "fhe-add.md" {
		t.Errorf("expected fhe-add.md, got %q", got)
	}
}

func TestBasenames(t *testing.T) {
	ex := Example{
		Name:         "fhe-add",
		ContractPath: "contracts/basic/FHEAdd.sol",
		TestPath:     "FHEAdd.ts",
	}
	if got := ex.ContractBasename(); got != "FHEAdd.sol" {
		t.Errorf("expected FHEAdd.sol, got %q", got)
	}
	if got := ex.TestBasename(); got != "FHEAdd.ts" {
		t.Errorf("expected FHEAdd.ts, got %q", got)
	}
}

func TestLoadFromPath(t *testing.T) {
	tmpDir := t.TempDir()
	registryPath := filepath.Join(tmpDir, "registry.json")

	examples := []Example{
		{
			Name:         "custom-example",
			ContractPath: "contracts/Custom.sol",
			TestPath:     "test/Custom.ts",
			Description:  "A custom example",
			Category:     CategoryBasic,
		},
	}

	data, err := json.Marshal(examples)
	if err != nil {
		t.Fatalf("marshaling test data: %v", err)
	}
	if err := os.WriteFile(registryPath, data, 0644); err != nil {
		t.Fatalf("writing test registry: %v", err)
	}

	r, err := LoadFromPath(registryPath)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}

	if r.Len() != 1 {
		t.Fatalf("expected 1 example, got %d", r.Len())
	}
	ex, err := r.Lookup("custom-example")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if ex.Description != "A custom example" {
		t.Errorf("unexpected description %q", ex.Description)
	}
}

func TestLoadFromPathRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	badJSON := filepath.Join(tmpDir, "bad.json")
	if err := os.WriteFile(badJSON, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(badJSON); err == nil {
		t.Error("expected error for malformed JSON")
	}

	empty := filepath.Join(tmpDir, "empty.json")
	if err := os.WriteFile(empty, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(empty); err == nil {
		t.Error("expected error for empty registry")
	}

	if _, err := LoadFromPath(filepath.Join(tmpDir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
