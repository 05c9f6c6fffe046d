package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gennyble/confindent"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check that files parse",
	Long:  "Check parses each file and reports the first line at which it is invalid.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, file := range args {
		_, err := confindent.Load(file)
		if err != nil {
			failed++
			var perr *confindent.ParseError
			if errors.As(err, &perr) {
				fmt.Fprintln(os.Stderr, color.RedString("%s:%d: %v", file, perr.Line, perr.Err))
			} else {
				fmt.Fprintln(os.Stderr, color.RedString("%s: %v", file, err))
			}
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", file)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}
