package vcard

import (
	"io"
	"strings"

	"github.com/simonhull/vcard/internal/types"
)

// Serialize renders the card back to vCard 3.0 text.
//
// The output is an approximate round trip: payloads and structured parts
// survive, but the original parameter order, charset, and encoding tags
// are not reproduced, and PHOTO, VERSION, and embedded AGENT cards are
// omitted. In multiple mode every child record is emitted in order.
func (c *Card) Serialize() string {
	var b strings.Builder
	switch c.Mode {
	case ModeSingle:
		serializeRecord(&b, c.rec)
	case ModeMultiple:
		for _, rec := range c.children {
			serializeRecord(&b, rec)
		}
	}
	return b.String()
}

// WriteTo writes the serialized card to w. It implements io.WriterTo.
func (c *Card) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.Serialize())
	return int64(n), err
}

// String returns the serialized card.
func (c *Card) String() string {
	return c.Serialize()
}

func serializeRecord(b *strings.Builder, rec *types.Record) {
	b.WriteString("BEGIN:VCARD\n")
	b.WriteString("VERSION:3.0\n")
	for key, values := range rec.All() {
		if key == "photo" || key == "version" {
			continue
		}
		for _, v := range values {
			writeProperty(b, key, v)
		}
	}
	b.WriteString("END:VCARD\n")
}

func writeProperty(b *strings.Builder, key string, v types.Value) {
	if _, ok := v.(types.Nested); ok {
		// Embedded sub-cards have no raw payload to emit.
		return
	}

	b.WriteString(strings.ToUpper(key))
	if ts := valueTypes(v); len(ts) > 0 {
		b.WriteString(";TYPE=")
		b.WriteString(strings.ToUpper(strings.Join(ts, ",")))
	}
	b.WriteByte(':')

	switch v := v.(type) {
	case types.Scalar:
		b.WriteString(string(v))
	case types.Typed:
		b.WriteString(v.Value)
	case types.Structured:
		parts := make([]string, len(v.PartNames))
		for i, name := range v.PartNames {
			parts[i] = v.Parts[name]
		}
		b.WriteString(strings.Join(parts, ";"))
	case types.MultiText:
		b.WriteString(strings.Join(v, ","))
	}
	b.WriteByte('\n')
}

func valueTypes(v types.Value) []string {
	switch v := v.(type) {
	case types.Typed:
		return v.Types
	case types.Structured:
		return v.Types
	default:
		return nil
	}
}
