package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvreport/config"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a report definition without building it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := config.LoadFile(opts.definition)
			if err != nil {
				return err
			}
			c, err := doc.Compile()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(opts.stdout, "ok: %d categories, %d levels, %d columns, %d elements\n",
				c.Library.Len(), len(c.Hierarchy.Levels()), c.Shape.Len(), len(c.Elements))

			return err
		},
	}
}
