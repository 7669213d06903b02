package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvreport/datasource"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

// errCell marks a failed cell in table output.
const errCell = "#ERR"

type tableWriter func(io.Writer, *datasource.Table) error

func writerFor(format string) (tableWriter, error) {
	switch format {
	case formatTable:
		return writeTable, nil
	case formatYAML:
		return writeYAML, nil
	case formatJSON:
		return writeJSON, nil
	}

	return nil, fmt.Errorf("unknown format %q (want table, yaml or json)", format)
}

func writeTable(w io.Writer, t *datasource.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := append([]string{"ROW"}, t.Columns...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range t.Rows {
		name := strings.Repeat("  ", row.Depth) + row.Name
		if !row.Visible {
			name = strings.Repeat("  ", row.Depth) + "[" + row.Name + "]"
		}
		cells := []string{name}
		for _, id := range t.Columns {
			cells = append(cells, cellText(row, id))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

func cellText(row datasource.Row, id string) string {
	if !row.Visible {
		return ""
	}
	if _, failed := row.Errors[id]; failed {
		return errCell
	}
	switch v := row.Values[id].(type) {
	case float64:
		return fmt.Sprintf("%.6g", v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// rowView is the serialized form of a row.
type rowView struct {
	Key     string            `yaml:"key" json:"key"`
	Name    string            `yaml:"name" json:"name"`
	Depth   int               `yaml:"depth" json:"depth"`
	Visible bool              `yaml:"visible" json:"visible"`
	Groups  map[string]string `yaml:"groups,omitempty" json:"groups,omitempty"`
	Values  map[string]any    `yaml:"values,omitempty" json:"values,omitempty"`
	Errors  map[string]string `yaml:"errors,omitempty" json:"errors,omitempty"`
}

type tableView struct {
	Columns []string  `yaml:"columns" json:"columns"`
	Rows    []rowView `yaml:"rows" json:"rows"`
}

func view(t *datasource.Table) tableView {
	v := tableView{Columns: t.Columns, Rows: make([]rowView, 0, len(t.Rows))}
	for _, row := range t.Rows {
		rv := rowView{
			Key:     row.Key.String(),
			Name:    row.Name,
			Depth:   row.Depth,
			Visible: row.Visible,
			Groups:  make(map[string]string),
			Values:  row.Values,
		}
		for i, g := range t.Groups {
			if row.Groups[i] != "" {
				rv.Groups[g.Field] = row.Groups[i]
			}
		}
		if len(row.Errors) > 0 {
			rv.Errors = make(map[string]string, len(row.Errors))
			for id, e := range row.Errors {
				rv.Errors[id] = e.Err.Error()
			}
		}
		v.Rows = append(v.Rows, rv)
	}

	return v
}

func writeYAML(w io.Writer, t *datasource.Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view(t)); err != nil {
		return err
	}

	return enc.Close()
}

func writeJSON(w io.Writer, t *datasource.Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(view(t))
}
