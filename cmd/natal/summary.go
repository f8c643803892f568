package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/natal-org/natal/engine"
	"github.com/natal-org/natal/filterspec"
	"github.com/natal-org/natal/helpers"
)

func newSummaryCmd() *cobra.Command {
	var (
		file   string
		spec   string
		format string
		out    string
		top    int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Compute the full aggregate summary over the filtered dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := loadFiltered(file, spec)
			if err != nil {
				return err
			}

			summary := engine.BuildSummary(view, engine.WithTopRegionLimit(top))

			switch format {
			case "json":
				data, err := json.MarshalIndent(summary, "", "  ")
				if err != nil {
					return err
				}
				return writeOutput(out, append(data, '\n'))
			case "csv":
				return writeOutput(out, tablesCSV(engine.BuildSummaryTables(summary)))
			case "table":
				return writeOutput(out, tablesText(engine.BuildSummaryTables(summary)))
			default:
				return fmt.Errorf("unknown format %q (want json, csv or table)", format)
			}
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the CSV data file (required)")
	cmd.Flags().StringVar(&spec, "spec", "", "path to a YAML/JSON filter document")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json, csv, table")
	cmd.Flags().StringVar(&out, "out", "", "write output to file instead of stdout")
	cmd.Flags().IntVar(&top, "top", 10, "region ranking size")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// loadFiltered loads the dataset, parses the optional filter document and
// applies it. Shared by summary and filter.
func loadFiltered(file, spec string) (engine.View, error) {
	ds, err := helpers.LoadFile(file)
	if err != nil {
		return engine.View{}, err
	}
	log.Printf("loaded %d records from %s (%s)", len(ds.Records), file, ds.Encoding)

	fs := engine.FilterSpec{}
	if spec != "" {
		fs, err = filterspec.ParseFile(spec)
		if err != nil {
			return engine.View{}, err
		}
	}

	view := engine.Apply(ds.View(), fs)
	log.Printf("%d records after filtering (from %d)", view.Len(), len(ds.Records))
	return view, nil
}
