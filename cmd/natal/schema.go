package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/natal-org/natal/helpers"
	"github.com/natal-org/natal/schema"
)

func newSchemaCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Show how the dataset's columns bind to the contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := helpers.LoadFile(file)
			if err != nil {
				return err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "encoding: %s\nrecords:  %d\n\n", ds.Encoding, len(ds.Records))
			for _, col := range schema.Columns {
				state := "missing (optional)"
				if idx := ds.Layout.Index(col.Name); idx >= 0 {
					state = fmt.Sprintf("column %d", idx)
				}
				kind := "code"
				if col.Kind == schema.KindMeasure {
					kind = "measure"
				}
				fmt.Fprintf(&b, "%-28s %-8s %s\n", col.Name, kind, state)
			}
			return writeOutput("", []byte(b.String()))
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the CSV data file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
