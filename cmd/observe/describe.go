package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odvcencio/observed/observe"
)

func newDescribeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "List the observed and ordinary attributes of every type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := root.catalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range cat.Names() {
				typ, err := cat.Lookup(name)
				if err != nil {
					return err
				}
				header := typ.Name()
				if p := typ.Parent(); p != nil {
					header += " extends " + p.Name()
				}
				fmt.Fprintln(out, header)
				fmt.Fprintf(out, "  observed: %s\n", strings.Join(typ.ObservedFields(), ", "))
				var plain []string
				for _, a := range typ.Attributes() {
					if !observe.IsUnset(a.Value) {
						plain = append(plain, a.Name+"="+observe.FormatValue(a.Value, root.width))
					}
				}
				fmt.Fprintf(out, "  ordinary: %s\n", strings.Join(plain, ", "))
			}
			return nil
		},
	}
}
