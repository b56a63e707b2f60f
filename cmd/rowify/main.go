// Command rowify converts loosely structured tabular text into normalized
// records and prints them in a chosen output format.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/rowify"
)

var (
	flagColumns []string
	flagMeta    []string
	flagNoID    bool
	flagOutput  string
	flagBorder  string
)

var rootCmd = &cobra.Command{
	Use:   "rowify [file]",
	Short: "Convert loose tabular text into normalized records",
	Long: `Reads almost-structured tabular text (markdown tables, CSV/TSV
fragments, space-aligned columns) from a file or stdin, normalizes each row
into a keyed record, and writes the records in the chosen output format.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringSliceVarP(&flagColumns, "columns", "c", nil, "Explicit column names, overriding any detected header")
	rootCmd.Flags().StringArrayVarP(&flagMeta, "meta", "m", nil, "Metadata key=value merged into every record (repeatable)")
	rootCmd.Flags().BoolVar(&flagNoID, "no-id", false, "Do not synthesize an id field")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "json", "Output format: json, jsonl, yaml, csv, tsv, markdown, table, html, plain, or go-template=<tmpl>")
	rootCmd.Flags().StringVar(&flagBorder, "border", "rounded", "Table border style: rounded, none, ascii, heavy, double")
}

func run(cmd *cobra.Command, args []string) error {
	format, err := rowify.ParseFormat(flagOutput)
	if err != nil {
		return err
	}
	border, err := rowify.ParseBorder(flagBorder)
	if err != nil {
		return err
	}
	meta, err := parseMeta(flagMeta)
	if err != nil {
		return err
	}

	var input []byte
	if len(args) == 1 {
		input, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	} else {
		input, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	records := rowify.Convert(string(input), rowify.Options{
		Columns: flagColumns,
		NoID:    flagNoID,
		Meta:    meta,
	})

	out := cmd.OutOrStdout()
	if format == rowify.Table {
		return rowify.WriteTable(out, records, border)
	}
	return rowify.Write(out, format, records)
}

func parseMeta(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	meta := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid meta pair %q, expected key=value", pair)
		}
		meta[key] = val
	}
	return meta, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
