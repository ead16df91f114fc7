package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"wright/internal/diagfmt"
	"wright/internal/driver"
)

const watchDebounce = 150 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [flags] [directory]",
	Short: "Re-check a directory whenever its sources change",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", watchDebounce, "quiet period before re-checking")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return fmt.Errorf("failed to get debounce flag: %w", err)
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	opts := s.driverOptions()
	if s.cfg.Parse.Cache {
		opts.Cache = openCache(false)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Close()
	if err := addWatchDirs(w, dir); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	check := func() {
		res, err := driver.Check(cmd.Context(), []string{dir}, opts)
		defer closeRun(res)
		if err != nil {
			logger().Errorf("check failed: %s", err)
			return
		}
		diags := res.Diagnostics()
		if !s.quiet {
			fmt.Fprintf(out, "[%s] checked %d file(s), %d diagnostic(s)\n", time.Now().Format(time.TimeOnly), len(res.Files), len(diags))
		}
		_ = diagfmt.Pretty(out, diags, s.prettyOpts())
	}

	logger().Infof("watching %s", dir)
	check()
	return watchLoop(cmd.Context(), w, dir, patterns(opts), debounce, check)
}

func patterns(opts driver.Options) []string {
	if len(opts.Include) == 0 {
		return []string{driver.DefaultInclude}
	}
	return opts.Include
}

// watchLoop calls check once per burst of relevant events until ctx is done.
func watchLoop(ctx context.Context, w *fsnotify.Watcher, root string, include []string, debounce time.Duration, check func()) error {
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addWatchDirs(w, ev.Name); err != nil {
						logger().Warningf("failed to watch %s: %s", ev.Name, err)
					}
					continue
				}
			}
			if !relevantEvent(ev, root, include) {
				continue
			}
			logger().Debugf("change: %s", ev)
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger().Errorf("watch error: %s", err)
		case <-timer.C:
			check()
		}
	}
}

func relevantEvent(ev fsnotify.Event, root string, include []string) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	rel, err := filepath.Rel(root, ev.Name)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pat := range include {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
	}
	return false
}

// addWatchDirs watches dir and its subdirectories; hidden ones are skipped.
func addWatchDirs(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}

