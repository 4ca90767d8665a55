// Command create-standalone copies one example's contract and test sources
// into a fresh directory and synthesizes the project files that make the
// result independently buildable.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/cipherlab/fhevm-examples/internal/config"
	"github.com/cipherlab/fhevm-examples/internal/console"
	"github.com/cipherlab/fhevm-examples/internal/registry"
	"github.com/cipherlab/fhevm-examples/internal/standalone"
)

func main() {
	fs := pflag.NewFlagSet("create-standalone", pflag.ContinueOnError)
	registryPath := fs.String("registry", "", "JSON file replacing the built-in example registry")
	root := fs.String("root", ".", "directory containing the example sources")
	out := fs.String("out", "", "output directory (default ./<example-name>)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: create-standalone [flags] <example-name> [output-dir]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	con := console.Default()

	reg, err := resolveRegistry(*registryPath)
	if err != nil {
		con.Errorf("Error: %v", err)
		os.Exit(1)
	}

	args := fs.Args()
	if len(args) < 1 {
		fs.Usage()
		printNames(reg.Names())
		os.Exit(1)
	}
	name := args[0]
	outputDir := *out
	if len(args) > 1 {
		outputDir = args[1]
	}

	cfg, err := config.LoadOptional()
	if err != nil {
		con.Errorf("Error: %v", err)
		os.Exit(1)
	}
	if cfg.LogLevel == "debug" {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	versions, err := config.LoadVersions()
	if err != nil {
		con.Errorf("Error: %v", err)
		os.Exit(1)
	}

	gen := standalone.NewGenerator(reg, *root, cfg, versions, con)
	if _, err := gen.Generate(name, outputDir); err != nil {
		var notFound *registry.NotFoundError
		if errors.As(err, &notFound) {
			con.Errorf("Error: %v", notFound)
			printNames(notFound.Known)
		} else {
			con.Errorf("Error: %v", err)
		}
		os.Exit(1)
	}
}

func resolveRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.Default(), nil
	}
	return registry.LoadFromPath(path)
}

func printNames(names []string) {
	fmt.Println("Available examples:")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
}
