package main

import (
	"github.com/spf13/cobra"

	"oserr/internal/domain"
	"oserr/internal/osstatus"
)

func runCheck(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}

	code, err := osstatus.Parse(args[0])
	if err != nil {
		return err
	}

	if osstatus.Check(code, label) != osstatus.NoErr {
		return exitCode(domain.ExitStatusFailure)
	}
	return nil
}
