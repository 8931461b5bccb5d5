package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/contour/batch"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the output record",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(batch.Schema())
	},
}
