package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/odvcencio/observed/observe/schema"
)

type rootOptions struct {
	schema    string
	logLevel  string
	logFormat string
	width     int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "observe",
		Short:         "Drive observable types declared in a YAML schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.schema, "schema", "", "path to the YAML schema")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")
	flags.IntVar(&opts.width, "width", 40, "truncate rendered values to this many cells (0 disables)")

	cmd.AddCommand(
		newApplyCmd(opts),
		newDescribeCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func (o *rootOptions) catalog() (*schema.Catalog, error) {
	if o.schema == "" {
		return nil, errors.New("--schema is required")
	}
	return schema.LoadFile(o.schema)
}
