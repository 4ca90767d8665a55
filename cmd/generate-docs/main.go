// Command generate-docs renders per-example markdown documentation. It
// documents a single example, every example matching a glob pattern, or the
// whole registry plus the aggregate SUMMARY.md index.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/cipherlab/fhevm-examples/internal/config"
	"github.com/cipherlab/fhevm-examples/internal/console"
	"github.com/cipherlab/fhevm-examples/internal/docs"
	"github.com/cipherlab/fhevm-examples/internal/registry"
)

func main() {
	fs := pflag.NewFlagSet("generate-docs", pflag.ContinueOnError)
	all := fs.Bool("all", false, "document every registered example and write the summary index")
	watch := fs.Bool("watch", false, "keep running and regenerate documents when sources change")
	registryPath := fs.String("registry", "", "JSON file replacing the built-in example registry")
	root := fs.String("root", ".", "directory containing the example sources")
	out := fs.String("out", "", "output directory for documents (default from config, normally docs)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: generate-docs [flags] <example-name|pattern>")
		fmt.Fprintln(os.Stderr, "       generate-docs [flags] --all")
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
	if len(args) < 1 && !*all && !*watch {
		fs.Usage()
		printNames(reg.Names())
		os.Exit(1)
	}

	cfg, err := config.LoadOptional()
	if err != nil {
		con.Errorf("Error: %v", err)
		os.Exit(1)
	}
	if cfg.LogLevel == "debug" {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	outDir := cfg.DocsDir
	if *out != "" {
		outDir = *out
	}

	gen := docs.NewGenerator(reg, *root, outDir, con)

	if *watch {
		// Watch mode is the only long-lived path; give it a signal context.
		ctx, cancel := context.WithCancel(context.Background())
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		defer func() {
			signal.Stop(sigChan)
			cancel()
		}()
		go func() {
			sig := <-sigChan
			slog.Info("interrupt received, shutting down", "signal", sig)
			cancel()
		}()

		if err := gen.Watch(ctx); err != nil {
			con.Errorf("Error: %v", err)
			os.Exit(1)
		}
		return
	}

	if *all {
		if _, err := gen.GenerateAll(); err != nil {
			reportError(con, err)
			os.Exit(1)
		}
		return
	}

	if _, err := gen.GenerateMatching(args[0]); err != nil {
		reportError(con, err)
		os.Exit(1)
	}
}

func reportError(con *console.Printer, err error) {
	var notFound *registry.NotFoundError
	if errors.As(err, &notFound) {
		con.Errorf("Error: %v", notFound)
		printNames(notFound.Known)
		return
	}

	var batchErr *docs.BatchError
	if errors.As(err, &batchErr) {
		con.Errorf("Error: %v", batchErr)
		for _, f := range batchErr.Failures {
			con.Errorf("  %s: %v", f.Name, f.Err)
		}
		return
	}

	con.Errorf("Error: %v", err)
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
