package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// parseFormat validates a --format flag value.
func parseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case FormatJSON, FormatHuman:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeTable renders rows under header with tablewriter.
func writeTable(w io.Writer, header []any, rows [][]any) error {
	t := tablewriter.NewWriter(w)
	t.Header(header...)
	for _, r := range rows {
		if err := t.Append(r...); err != nil {
			return fmt.Errorf("table row: %w", err)
		}
	}
	return t.Render()
}

func formatSize(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
