package main

import (
	"fmt"
	"os"

	"github.com/gennyble/confindent"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

var fmtDiff bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Print the canonical serialization of a file",
	Long: "Fmt parses a file and prints it back out. The output differs from the\n" +
		"input only in normalizations like a guaranteed final newline.",
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtDiff, "diff", false, "print a diff against the source instead of the result")
}

func runFmt(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	doc, err := confindent.Parse(src)
	if err != nil {
		return err
	}

	out, err := confindent.Marshal(doc)
	if err != nil {
		return err
	}

	if fmtDiff {
		dmp := diffpatch.New()
		diffs := dmp.DiffMain(string(src), string(out), false)
		fmt.Fprint(cmd.OutOrStdout(), dmp.DiffPrettyText(diffs))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
