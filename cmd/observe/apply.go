package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/observed/observe"
)

func newApplyCmd(root *rootOptions) *cobra.Command {
	var (
		typeName string
		sets     []string
	)
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create an instance and apply attribute writes in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			assignments, err := parseAssignments(sets)
			if err != nil {
				return err
			}
			cat, err := root.catalog()
			if err != nil {
				return err
			}
			typ, err := cat.Lookup(typeName)
			if err != nil {
				return err
			}

			logger, err := newLogger(root.logLevel, root.logFormat, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			var subs observe.Subscriptions
			defer subs.Clear()
			subs.BindFunc(typ, observe.LogListener(logger, observe.WithValueWidth(root.width)))

			inst, err := typ.New()
			if err != nil {
				return err
			}
			for _, a := range assignments {
				if err := inst.Set(a.name, a.value); err != nil {
					return fmt.Errorf("set %s: %w", a.name, err)
				}
			}

			out := cmd.OutOrStdout()
			values := inst.Values()
			for _, attr := range typ.Attributes() {
				fmt.Fprintf(out, "%s.%s = %s\n", typ.Name(), attr.Name, observe.FormatValue(values[attr.Name], root.width))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&typeName, "type", "", "type to instantiate")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "attribute write as name=value, value parsed as YAML (repeatable)")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

type assignment struct {
	name  string
	value any
}

func parseAssignments(sets []string) ([]assignment, error) {
	out := make([]assignment, 0, len(sets))
	for _, s := range sets {
		name, raw, ok := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q: want name=value", s)
		}
		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", s, err)
		}
		out = append(out, assignment{name: name, value: value})
	}
	return out, nil
}
