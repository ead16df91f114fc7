package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"wright/internal/diag"
	"wright/internal/diagfmt"
	"wright/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [paths...]",
	Short: "Report diagnostics for wright sources",
	Long:  `Check parses files and directories (default ".") and reports lexical and syntax diagnostics`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("no-cache", false, "do not read or write the diagnostics cache")
	checkCmd.Flags().Bool("clear-cache", false, "drop the diagnostics cache before checking")
	checkCmd.Flags().String("progress", "auto", "show a progress view (auto|on|off)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	format, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	progressFlag, err := flags.GetString("progress")
	if err != nil {
		return fmt.Errorf("failed to get progress flag: %w", err)
	}
	mode, err := readUIMode(progressFlag)
	if err != nil {
		return err
	}
	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	clearCache, err := flags.GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	opts := s.driverOptions()
	if flags.Changed("jobs") {
		if opts.Jobs, err = flags.GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if s.cfg.Parse.Cache && !noCache {
		opts.Cache = openCache(clearCache)
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := driver.ExpandPaths(paths, opts)
	if err != nil {
		return err
	}

	var res *driver.RunResult
	if format == "pretty" && shouldUseTUI(mode, len(files)) {
		res, err = runCheckWithUI(cmd.Context(), "checking", files, paths, opts)
	} else {
		res, err = driver.Check(cmd.Context(), paths, opts)
	}
	if err != nil {
		closeRun(res)
		return err
	}
	defer closeRun(res)

	diags := res.Diagnostics()
	out := cmd.OutOrStdout()
	switch format {
	case "short":
		err = diagfmt.Short(out, diags, s.prettyOpts())
	case "json":
		err = diagfmt.JSON(out, diags, diagfmt.JSONOpts{
			IncludePositions: true,
			BaseDir:          s.baseDir,
			IncludeNotes:     true,
		})
	default:
		err = diagfmt.Pretty(out, diags, s.prettyOpts())
	}
	if err != nil {
		return err
	}
	if !s.quiet && format != "json" {
		printCheckSummary(os.Stderr, res, diags)
	}
	printTimings(os.Stderr, s.timer)
	if res.HasErrors() {
		return errReported
	}
	return nil
}

func openCache(clear bool) *driver.DiskCache {
	cache, err := driver.OpenDiskCache("wright")
	if err != nil {
		logger().Warningf("diagnostics cache disabled: %s", err)
		return nil
	}
	if clear {
		if err := cache.DropAll(); err != nil {
			logger().Warningf("failed to clear diagnostics cache: %s", err)
		}
	}
	return cache
}

func printCheckSummary(w io.Writer, res *driver.RunResult, diags []diag.Diagnostic) {
	errs, warns, cached := 0, 0, 0
	for _, d := range diags {
		switch {
		case d.Severity >= diag.SevError:
			errs++
		case d.Severity == diag.SevWarning:
			warns++
		}
	}
	for _, f := range res.Files {
		if f.Cached {
			cached++
		}
	}
	fmt.Fprintf(w, "checked %d file(s): %d error(s), %d warning(s)", len(res.Files), errs, warns)
	if cached > 0 {
		fmt.Fprintf(w, ", %d from cache", cached)
	}
	fmt.Fprintln(w)
}

// closeRun releases the sources of a run, including a run cut short by an error.
func closeRun(res *driver.RunResult) {
	if res == nil {
		return
	}
	if err := res.Close(); err != nil {
		logger().Warningf("failed to release sources: %v", err)
	}
}
