// Package convert implements the Converter and the Direct Shortcut
// Table composition: the layer that sits between a single schema's
// ConverterTable and the Registry.
package convert

import (
	"github.com/shlesha-go/shlesha/core"
	"github.com/shlesha-go/shlesha/engine/hub"
	"github.com/shlesha-go/shlesha/engine/table"
	"github.com/shlesha-go/shlesha/engine/tokenizer"
)

// Converter is a thin composition of a schema name, its built table,
// and which hub side that table's canonical values live on.
type Converter struct {
	SchemaName string
	Table      *table.ConverterTable
}

// New wraps a built ConverterTable as a Converter.
func New(tbl *table.ConverterTable) *Converter {
	return &Converter{SchemaName: tbl.ScriptName, Table: tbl}
}

// HubVariant reports which hub representation this converter's
// canonical values are expressed in.
func (c *Converter) HubVariant() hub.Variant { return hub.HubSideOf(c.Table.HubSide) }

// ToHub runs the Tokenizer with the forward table and wraps the result
// as this converter's declared hub side.
func (c *Converter) ToHub(input string, opts ...tokenizer.Option) (hub.Form, []tokenizer.Unknown) {
	form, res := c.ToHubDetailed(input, opts...)
	return form, res.Unknowns
}

// ToHubDetailed is ToHub plus the full tokenizer.Result, including the
// input/output position Spans a caller needs to map a position found in
// the hub payload (e.g. an unknown fragment surfaced only after
// projecting to the other hub side) back to the original input text.
func (c *Converter) ToHubDetailed(input string, opts ...tokenizer.Option) (hub.Form, tokenizer.Result) {
	res := tokenizer.Tokenize(input, c.Table.ForwardLookup(), opts...)
	return hub.Form{Variant: c.HubVariant(), Payload: res.Output}, res
}

// FromHub runs the Tokenizer with the reverse table, provided h is
// already expressed in this converter's hub side; the dispatcher is
// responsible for projecting h to the right side first.
func (c *Converter) FromHub(h hub.Form, opts ...tokenizer.Option) (string, []tokenizer.Unknown, error) {
	if h.Variant != c.HubVariant() {
		return "", nil, core.New(core.KindWrongHubSide,
			"converter %s expects hub side %s, got %s", c.SchemaName, c.HubVariant(), h.Variant)
	}
	res := tokenizer.Tokenize(h.Payload, c.Table.ReverseLookup(), opts...)
	return res.Output, res.Unknowns, nil
}
