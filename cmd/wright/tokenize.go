package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wright/internal/diagfmt"
	"wright/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.wr|->",
	Short: "Tokenize a wright source file",
	Long:  `Tokenize breaks down a wright source file (or stdin with "-") into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Bool("skip-trivia", false, "omit whitespace and comments")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	skipTrivia, err := cmd.Flags().GetBool("skip-trivia")
	if err != nil {
		return fmt.Errorf("failed to get skip-trivia flag: %w", err)
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(cmd.Context(), args[0], s.driverOptions())
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	defer result.Close()

	// Диагностика в stderr, токены в stdout
	if result.Bag.Len() > 0 {
		if err := diagfmt.Pretty(os.Stderr, result.Bag.Items(), s.prettyOpts()); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(out, result.Tokens, skipTrivia)
	case "json":
		err = diagfmt.FormatTokensJSON(out, result.Tokens, skipTrivia)
	case "msgpack":
		err = diagfmt.FormatTokensMsgpack(out, result.Tokens, skipTrivia)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	printTimings(os.Stderr, s.timer)
	if result.Bag.HasErrors() {
		return errReported
	}
	return nil
}
