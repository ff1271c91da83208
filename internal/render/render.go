// Package render formats values for terminals and tool results.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func JSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// JSONString returns v as indented JSON without the trailing newline.
func JSONString(v interface{}) (string, error) {
	var b bytes.Buffer
	if err := JSON(&b, v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(b.Bytes(), "\n")), nil
}

// Table renders the table defined by the given properties into w. Both title &
// cols are optional.
func Table(w io.Writer, title string, rows [][]string, cols ...string) error {
	if title != "" {
		fmt.Fprintln(w, aurora.Bold(title))
	}

	table := tablewriter.NewWriter(w)

	if len(cols) > 0 {
		table.Header(lo.ToAnySlice(cols)...)
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}

	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w)

	return nil
}
