package main

import (
	"github.com/spf13/cobra"

	"wright/internal/lsp"
)

var lspCmd = &cobra.Command{
	Use:          "lsp",
	Short:        "Run the wright language server over stdio",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runLSP,
}

func runLSP(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	verbosity, _ := cmd.Flags().GetCount("verbose")
	server := lsp.NewServer(lsp.ServerOptions{
		MaxDiagnostics: s.maxDiag,
		Debug:          verbosity > 1,
	})
	return server.RunStdio()
}
