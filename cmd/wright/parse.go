package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"wright/internal/ast"
	"wright/internal/diagfmt"
	"wright/internal/driver"
	"wright/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.wr|directory|->",
	Short: "Parse a wright source file or directory and output AST",
	Long:  `Parse analyzes a wright source file, stdin ("-") or every *.wr file in a directory and prints the syntax trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|tree|json|yaml)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if !validASTFormat(format) {
		return fmt.Errorf("unknown format: %s", format)
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	opts := s.driverOptions()
	if cmd.Flags().Changed("jobs") {
		if opts.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	out := cmd.OutOrStdout()

	// Проверяем, файл это или директория
	if st, statErr := os.Stat(path); path == driver.StdinPath || statErr != nil || !st.IsDir() {
		result, err := driver.Parse(cmd.Context(), path, opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		defer result.Close()

		if result.Bag.Len() > 0 {
			if err := diagfmt.Pretty(os.Stderr, result.Bag.Items(), s.prettyOpts()); err != nil {
				return err
			}
		}
		if err := writeAST(out, format, result.File); err != nil {
			return err
		}
		printTimings(os.Stderr, s.timer)
		if result.Bag.HasErrors() {
			return errReported
		}
		return nil
	}

	run, err := driver.ParseDir(cmd.Context(), path, opts)
	if err != nil {
		closeRun(run)
		return fmt.Errorf("parsing failed: %w", err)
	}
	defer closeRun(run)

	if diags := run.Diagnostics(); len(diags) > 0 {
		if err := diagfmt.Pretty(os.Stderr, diags, s.prettyOpts()); err != nil {
			return err
		}
	}

	switch format {
	case "json", "yaml":
		// один документ: путь -> дерево
		output := make(map[string]*diagfmt.ASTNodeOutput, len(run.Files))
		for _, r := range run.Files {
			key := displayPath(r.Path, s.baseDir)
			if r.File == nil {
				output[key] = nil
				continue
			}
			node := diagfmt.BuildASTOutput(r.File)
			output[key] = &node
		}
		if format == "yaml" {
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(output); err != nil {
				return err
			}
			if err := enc.Close(); err != nil {
				return err
			}
			break
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(output); err != nil {
			return err
		}
	default:
		for idx, r := range run.Files {
			if !s.quiet {
				fmt.Fprintf(out, "== %s ==\n", displayPath(r.Path, s.baseDir))
			}
			if r.File != nil {
				if err := writeAST(out, format, r.File); err != nil {
					return err
				}
			}
			if !s.quiet && idx < len(run.Files)-1 {
				fmt.Fprintln(out)
			}
		}
	}
	printTimings(os.Stderr, s.timer)
	if run.HasErrors() {
		return errReported
	}
	return nil
}

func validASTFormat(format string) bool {
	switch format {
	case "pretty", "tree", "json", "yaml":
		return true
	}
	return false
}

func writeAST(w io.Writer, format string, n ast.Node) error {
	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(w, n)
	case "tree":
		return diagfmt.FormatASTTree(w, n)
	case "json":
		return diagfmt.FormatASTJSON(w, n)
	case "yaml":
		return diagfmt.FormatASTYAML(w, n)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func displayPath(path, base string) string {
	if rel, err := source.RelativePath(path, base); err == nil {
		return rel
	}
	return path
}
