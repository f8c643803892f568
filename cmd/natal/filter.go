package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/natal-org/natal/engine"
)

func newFilterCmd() *cobra.Command {
	var (
		file   string
		spec   string
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Emit the rows passing the filter document",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := loadFiltered(file, spec)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				data, err := json.MarshalIndent(view.Records(), "", "  ")
				if err != nil {
					return err
				}
				return writeOutput(out, append(data, '\n'))
			case "csv":
				return writeOutput(out, tablesCSV([]engine.TableData{*rowsTable(view)}))
			default:
				return fmt.Errorf("unknown format %q (want json or csv)", format)
			}
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the CSV data file (required)")
	cmd.Flags().StringVar(&spec, "spec", "", "path to a YAML/JSON filter document")
	cmd.Flags().StringVar(&format, "format", "csv", "output format: json, csv")
	cmd.Flags().StringVar(&out, "out", "", "write output to file instead of stdout")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// rowsTable flattens the filtered rows into a table of the columns a reader
// actually works with: decoded labels plus the raw measurements.
func rowsTable(v engine.View) *engine.TableData {
	t := &engine.TableData{
		Title: "filtered records",
		Columns: []engine.Column{
			{Key: "year", Label: "연도", Align: "right"},
			{Key: "month", Label: "출생월", Align: "right"},
			{Key: "region", Label: "시도명", Align: "left"},
			{Key: "gender", Label: "성별", Align: "left"},
			{Key: "weight", Label: "출생아체중", Align: "right"},
			{Key: "multiplicity", Label: "다태아분류", Align: "left"},
			{Key: "marital", Label: "혼인상태", Align: "left"},
			{Key: "mother_age", Label: "모연령", Align: "left"},
			{Key: "father_age", Label: "부연령", Align: "left"},
		},
		Rows: make([][]string, 0, v.Len()),
	}
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		t.Rows = append(t.Rows, []string{
			codeString(r.Year),
			codeString(r.Month),
			r.RegionName,
			r.GenderLabel,
			measureString(r.Weight),
			r.MultiplicityTypeLabel,
			r.MaritalLabel,
			r.MotherAgeLabel,
			r.FatherAgeLabel,
		})
	}
	return t
}

func codeString(c engine.Code) string {
	if !c.Valid {
		return ""
	}
	return strconv.Itoa(c.Value)
}

func measureString(m engine.Measure) string {
	if !m.Valid {
		return ""
	}
	return strconv.FormatFloat(m.Value, 'f', -1, 64)
}
