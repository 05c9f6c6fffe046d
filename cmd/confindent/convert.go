package main

import (
	"fmt"

	"github.com/gennyble/confindent"
	"github.com/gennyble/confindent/ast"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Print a file as YAML",
	Long: "Convert prints the logical tree of a file as YAML. Children nest as\n" +
		"maps, duplicate keys collect into a sequence, and a node that carries\n" +
		"both a value and children keeps its value under the \"_\" key.",
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	doc, err := confindent.Load(args[0])
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(nodesValue(doc.Nodes()))
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

func nodesValue(nodes []*ast.Node) map[string]any {
	m := make(map[string]any, len(nodes))
	for _, n := range nodes {
		v := nodeValue(n)
		prev, seen := m[n.Key]
		switch {
		case !seen:
			m[n.Key] = v
		default:
			if list, ok := prev.([]any); ok {
				m[n.Key] = append(list, v)
			} else {
				m[n.Key] = []any{prev, v}
			}
		}
	}
	return m
}

func nodeValue(n *ast.Node) any {
	kids := n.Nodes()
	if len(kids) == 0 {
		if !n.HasValue {
			return nil
		}
		return n.Value
	}

	m := nodesValue(kids)
	if n.HasValue {
		m["_"] = n.Value
	}
	return m
}
