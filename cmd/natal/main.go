// Command natal loads a birth-record CSV export, applies a filter document
// and prints the derived aggregates.
//
// Examples:
//
//	natal summary --file chd_2023.csv --format table
//	natal summary --file chd_2023.csv --spec filter.yaml --format json --out summary.json
//	natal filter --file chd_2023.csv --spec filter.yaml --format csv
//	natal schema --file chd_2023.csv
package main

import (
	"log"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("natal: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "natal",
		Short:         "Decode, filter and aggregate birth-record statistics",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSummaryCmd(), newFilterCmd(), newSchemaCmd())
	return root
}
