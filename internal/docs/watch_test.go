package docs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cipherlab/fhevm-examples/internal/console"
	"github.com/cipherlab/fhevm-examples/internal/registry"
)

func TestWatchTargets(t *testing.T) {
	root := t.TempDir()

	reg, err := registry.New([]registry.Example{
		{Name: "a", ContractPath: "contracts/A.sol", TestPath: "test/A.ts"},
		{Name: "b", ContractPath: "contracts/B.sol", TestPath: "test/B.ts"},
	})
	if err != nil {
		t.Fatal(err)
	}

	g := NewGenerator(reg, root, filepath.Join(root, "docs"), console.New(io.Discard, io.Discard))

	targets, dirs, err := g.watchTargets()
	if err != nil {
		t.Fatalf("watchTargets: %v", err)
	}

	// Two source dirs, deduplicated across examples
	if len(dirs) != 2 {
		t.Fatalf("expected 2 watch dirs, got %d: %v", len(dirs), dirs)
	}

	contractA, err := filepath.Abs(filepath.Join(root, "contracts", "A.sol"))
	if err != nil {
		t.Fatal(err)
	}
	names, ok := targets[contractA]
	if !ok {
		t.Fatalf("no target entry for %s", contractA)
	}
	if len(names) != 1 || names[0] != "a" {
		t.Errorf("unexpected names for contract A: %v", names)
	}

	if len(targets) != 4 {
		t.Errorf("expected 4 target paths, got %d", len(targets))
	}
}

func TestWatchRegeneratesOnChange(t *testing.T) {
	root := t.TempDir()
	contractPath := filepath.Join(root, "contracts", "A.sol")
	testPath := filepath.Join(root, "test", "A.ts")
	for _, p := range []string{contractPath, testPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("original\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	reg, err := registry.New([]registry.Example{
		{Name: "a", ContractPath: "contracts/A.sol", TestPath: "test/A.ts", Description: "d", Category: registry.CategoryBasic},
	})
	if err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(root, "docs")
	g := NewGenerator(reg, root, outDir, console.New(io.Discard, io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- g.Watch(ctx) }()

	docPath := filepath.Join(outDir, "a.md")
	waitFor(t, 5*time.Second, func() bool {
		data, err := os.ReadFile(docPath)
		return err == nil && strings.Contains(string(data), "original")
	}, "initial generation")

	if err := os.WriteFile(contractPath, []byte("updated contract body\n"), 0644); err != nil {
		t.Fatal(err)
	}

	waitFor(t, 5*time.Second, func() bool {
		data, err := os.ReadFile(docPath)
		return err == nil && strings.Contains(string(data), "updated contract body")
	}, "regeneration after change")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned error after cancel: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("Watch did not return after cancel")
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool, what string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
