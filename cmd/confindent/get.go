package main

import (
	"fmt"

	"github.com/gennyble/confindent"
	"github.com/spf13/cobra"
)

var getDelim string

var getCmd = &cobra.Command{
	Use:   "get <file> <path>",
	Short: "Print the value at a key path",
	Long:  "Get looks a value up by a delimited path of keys, for example Host/User.",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().StringVarP(&getDelim, "delimiter", "d", "/", "path delimiter")
}

func runGet(cmd *cobra.Command, args []string) error {
	doc, err := confindent.Load(args[0])
	if err != nil {
		return err
	}

	delim := []rune(getDelim)
	if len(delim) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", getDelim)
	}

	value, ok := doc.GetDelim(args[1], delim[0])
	if !ok {
		return fmt.Errorf("%s: no value at %q", args[0], args[1])
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
