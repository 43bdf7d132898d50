// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Preview writes a colored preview of a formatted log line, for hosts that
// mirror the clipboard content to a console. Colors are disabled when the
// writer is not a terminal.
func Preview(w io.Writer, format string, req Request) error {
	body, err := Export(format, req)
	if err != nil {
		return err
	}

	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		color.NoColor = true
	}

	title := color.New(color.FgCyan, color.Bold)
	value := color.New(color.FgWhite)

	title.Fprintf(w, "[%s]\n", format)
	value.Fprintln(w, body)
	if len(req.Keys) > 0 {
		fmt.Fprintf(w, "keys issued: %d\n", len(req.Keys))
	}
	return nil
}
