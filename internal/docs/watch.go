package docs

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

const debounceInterval = 300 * time.Millisecond

// watchTargets maps each absolute source path to the example names that
// embed it and returns the sorted set of directories the watcher must
// observe. fsnotify watches directories, not files, so edits that replace a
// file (the common editor save strategy) are still seen.
func (g *Generator) watchTargets() (map[string][]string, []string, error) {
	targets := make(map[string][]string)
	dirSet := make(map[string]struct{})

	for _, ex := range g.reg.Examples() {
		for _, rel := range []string{ex.ContractPath, ex.TestPath} {
			abs, err := filepath.Abs(filepath.Join(g.root, filepath.FromSlash(rel)))
			if err != nil {
				return nil, nil, fmt.Errorf("resolving %s: %w", rel, err)
			}
			targets[abs] = append(targets[abs], ex.Name)
			dirSet[filepath.Dir(abs)] = struct{}{}
		}
	}

	dirs := make([]string, 0, len(dirSet))
	for d := range dirSet {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return targets, dirs, nil
}

// Watch performs one full generation, then regenerates an example's document
// whenever its contract or test source changes. It blocks until ctx is
// cancelled; cancellation is not an error.
func (g *Generator) Watch(ctx context.Context) error {
	if _, err := g.GenerateAll(); err != nil {
		g.con.Warnf("Initial generation incomplete: %v", err)
	}

	targets, dirs, err := g.watchTargets()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	g.con.Infof("Watching %d source directories for changes", len(dirs))

	changed := make(chan string, 64)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				abs, err := filepath.Abs(ev.Name)
				if err != nil {
					continue
				}
				for _, name := range targets[abs] {
					select {
					case changed <- name:
					case <-ctx.Done():
						return ctx.Err()
					}
				}
			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				g.con.Warnf("Watch error: %v", werr)
			}
		}
	})

	eg.Go(func() error {
		pending := make(map[string]struct{})
		var timer <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case name := <-changed:
				pending[name] = struct{}{}
				timer = time.After(debounceInterval)
			case <-timer:
				for name := range pending {
					if _, err := g.GenerateOne(name); err != nil {
						g.con.Warnf("Regenerating %s: %v", name, err)
					}
				}
				pending = make(map[string]struct{})
				timer = nil
			}
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
