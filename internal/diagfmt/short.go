package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"wright/internal/diag"
)

// Short prints one line per diagnostic: path:line:col: severity CODE: message.
func Short(w io.Writer, diags []diag.Diagnostic, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for _, d := range diags {
		loc := "<unknown>"
		if f, ok := d.Primary(); ok && f.Source != nil {
			loc = fmt.Sprintf("%s:%s", fragmentPath(f, opts.PathMode, opts.BaseDir), f.Position())
		}
		if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n", loc,
			pal.severity(d.Severity).Sprint(d.Severity), d.Code.ID(), sanitize(d.Message)); err != nil {
			return err
		}
	}
	return nil
}

func sanitize(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
