// SPDX-License-Identifier: GPL-3.0-or-later

package app

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"gopkg.in/yaml.v2"

	"github.com/netdata/srmctl/srm/client"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// record is satisfied by client.Record and every type embedding it.
type record interface {
	json.Marshaler
	Fields() []client.Field
}

type result struct {
	// single results are printed as Field/Value rows.
	single  bool
	header  table.Row
	rows    []table.Row
	records []record
}

func single(r record) *result {
	return &result{single: true, records: []record{r}}
}

func list[T record](items []T, header table.Row, row func(T) table.Row) *result {
	return &result{
		header:  header,
		rows:    lo.Map(items, func(v T, _ int) table.Row { return row(v) }),
		records: lo.Map(items, func(v T, _ int) record { return v }),
	}
}

func (a *App) render(res *result) error {
	switch a.Output {
	case OutputJSON:
		return a.renderJSON(res)
	case OutputYAML:
		return a.renderYAML(res)
	case OutputTable, "":
		return a.renderTable(res)
	default:
		return fmt.Errorf("unknown output format '%s'", a.Output)
	}
}

func (a *App) renderTable(res *result) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	if res.single {
		t.AppendHeader(table.Row{"Field", "Value"})
		for _, f := range res.records[0].Fields() {
			t.AppendRow(table.Row{f.Key, f.Value.String()})
		}
	} else {
		t.AppendHeader(res.header)
		t.AppendRows(res.rows)
		t.AppendFooter(table.Row{fmt.Sprintf("total: %d", len(res.rows))})
	}

	_, err := fmt.Fprintln(a.Out, t.Render())
	return err
}

func (a *App) renderJSON(res *result) error {
	enc := json.NewEncoder(a.Out)
	enc.SetIndent("", "  ")

	if res.single {
		return enc.Encode(res.records[0])
	}
	return enc.Encode(res.records)
}

func (a *App) renderYAML(res *result) error {
	var v any
	if res.single {
		v = mapSlice(res.records[0])
	} else {
		v = lo.Map(res.records, func(r record, _ int) yaml.MapSlice { return mapSlice(r) })
	}

	bs, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = a.Out.Write(bs)
	return err
}

// mapSlice keeps the record keys in document order.
func mapSlice(r record) yaml.MapSlice {
	return lo.Map(r.Fields(), func(f client.Field, _ int) yaml.MapItem {
		return yaml.MapItem{Key: f.Key, Value: f.Value.Value()}
	})
}
