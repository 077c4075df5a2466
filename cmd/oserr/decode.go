package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"oserr/internal/osstatus"
	"oserr/internal/terminal"
)

func runDecode(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}

	for _, arg := range args {
		code, err := osstatus.Parse(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatDecodeLine(code))
	}

	return nil
}

// formatDecodeLine renders one decoded status: the four-character code with
// its numeric value, or the bare number, plus a description when the code
// is a known one.
func formatDecodeLine(code osstatus.Status) string {
	var b strings.Builder

	if cc, ok := code.FourCC(); ok {
		fmt.Fprintf(&b, "%s'%s'%s %s(%d)%s",
			terminal.Color(terminal.Bold), cc, terminal.Color(terminal.Reset),
			terminal.Color(terminal.Dim), int32(code), terminal.Color(terminal.Reset))
	} else {
		fmt.Fprintf(&b, "%s%d%s",
			terminal.Color(terminal.Bold), int32(code), terminal.Color(terminal.Reset))
	}

	if desc, ok := osstatus.Describe(code); ok {
		b.WriteString("  ")
		b.WriteString(desc)
	}

	return b.String()
}
