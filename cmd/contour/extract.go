package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/contour"
	"github.com/tsawler/contour/model"
)

var (
	extractOutput   string
	extractStrategy string
	extractFormat   string
	extractMaxPages int
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract the title and outline of a single document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := contour.Open(args[0]).
			WithLogger(logger).
			WithMaxPages(extractMaxPages)
		if extractStrategy != "" {
			e = e.WithStrategy(extractStrategy)
		}

		result, err := e.Result()
		if err != nil {
			return err
		}

		var out io.Writer = os.Stdout
		if extractOutput != "" {
			f, err := os.Create(extractOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		switch extractFormat {
		case "json":
			return contour.EncodeResult(out, result)
		case "text":
			renderTree(out, result)
			return nil
		default:
			return fmt.Errorf("unknown output format %q (valid: json, text)", extractFormat)
		}
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "write the record to a file instead of stdout")
	extractCmd.Flags().StringVar(&extractStrategy, "strategy", "", "force a strategy: toc, heuristic, form or visual")
	extractCmd.Flags().StringVar(&extractFormat, "format", "json", "output format: json or text")
	extractCmd.Flags().IntVar(&extractMaxPages, "max-pages", 0, "refuse documents with more pages than this (0 = no cap)")
}

// renderTree prints the result as an indented heading tree.
func renderTree(w io.Writer, result model.Result) {
	if result.Title != "" {
		fmt.Fprintln(w, result.Title)
	} else {
		fmt.Fprintln(w, "(no title)")
	}
	for _, item := range result.Outline {
		indent := strings.Repeat("  ", model.LevelNumber(item.Level)-1)
		fmt.Fprintf(w, "%s%s %s (p.%d)\n", indent, item.Level, item.Text, item.Page)
	}
}
