// Package main provides the CLI entry point for the status code decoder.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"oserr/internal/config"
	"oserr/internal/domain"
	"oserr/internal/terminal"
)

var (
	noColor    bool
	configPath string
	noConfig   bool
	label      string
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := &cobra.Command{
		Use:   "oserr <code>...",
		Short: "Decode platform status codes",
		Long: `Decode platform status codes into human-readable form.

Codes may be given as integers (decimal or 0x hex) or as four-character
code literals such as "fmt?". Well-known multimedia codes are annotated
with a short description.

Exit codes:
  0 - Decoded successfully
  1 - A nonzero status was reported (check command)
  2 - Error`,
		Args:          cobra.MinimumNArgs(1),
		RunE:          runDecode,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       buildVersionString(),
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: .oserr.yaml in cwd or home)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false,
		"Skip loading .oserr.yaml config file")

	checkCmd := &cobra.Command{
		Use:   "check <code>",
		Short: "Report a failed status to stderr and mirror it in the exit code",
		Long: `Report a status code the way a failing library call would: a zero
status exits 0 silently; a nonzero status prints

  Error: <operation> (<code>)

to stderr and exits 1.`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}
	checkCmd.Flags().StringVarP(&label, "label", "l", "",
		"Operation label for the diagnostic message")
	rootCmd.AddCommand(checkCmd)

	if err := rootCmd.Execute(); err != nil {
		// Check if this is an exit code wrapper (not a real error)
		if exitErr, ok := err.(exitCodeError); ok {
			return exitErr.code.Int()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return domain.ExitError.Int()
	}

	return 0
}

// setup loads configuration and resolves the color mode. Shared by the
// root and check commands.
func setup() error {
	logger := terminal.NewLogger()

	colorMode := config.ColorAuto
	if !noConfig {
		var result *config.LoadResult
		var err error
		if configPath != "" {
			result, err = config.LoadFromPath(configPath)
		} else {
			result, err = config.Load()
		}
		if err != nil {
			return err
		}
		for _, warning := range result.Warnings {
			logger.Logf(terminal.StyleWarning, "Warning: %s", warning)
		}
		result.Config.Apply()
		colorMode = result.Config.ColorMode()
	}

	switch {
	case noColor || colorMode == config.ColorNever:
		terminal.DisableColors()
	case colorMode == config.ColorAlways:
		terminal.EnableColors()
	case !terminal.IsStdoutTTY():
		terminal.DisableColors()
	}

	return nil
}
