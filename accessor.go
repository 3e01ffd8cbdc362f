package vcard

import (
	"strings"

	"github.com/simonhull/vcard/internal/registry"
	"github.com/simonhull/vcard/internal/types"
)

// Get returns the ordered values stored under key on a single-mode card.
//
// AGENT entries come back exactly as stored. File-bearing keys (PHOTO,
// LOGO, SOUND) promote any uri:-prefixed payload to a Typed value with
// Encoding "uri" before returning. Absent keys return an empty slice,
// never an error. In multiple mode the document has no properties of its
// own and Get returns nil.
func (c *Card) Get(key string) []Value {
	if c.rec == nil {
		return nil
	}
	key = strings.ToLower(key)
	values := c.rec.Get(key)
	if key == "agent" || !registry.IsFileKey(key) {
		return values
	}
	for i, v := range values {
		values[i] = promoteURI(v)
	}
	return values
}

// Collapsed returns the sole value for key when the card was built with
// WithCollapse and exactly one value is stored. It reports false
// otherwise, and always for AGENT entries, which never collapse.
func (c *Card) Collapsed(key string) (Value, bool) {
	if !c.collapse {
		return nil, false
	}
	key = strings.ToLower(key)
	if key == "agent" {
		return nil, false
	}
	values := c.Get(key)
	if len(values) != 1 {
		return nil, false
	}
	return values[0], true
}

// Add appends a property on a single-mode card and returns the card's
// record for chaining. See Record.Add for the slot-filling rules. Add is
// a no-op returning nil on a multiple-mode document.
func (c *Card) Add(key, value string, extras ...string) *Record {
	if c.Mode == ModeMultiple {
		return nil
	}
	if c.rec == nil {
		c.rec = types.NewRecord()
		c.Mode = ModeSingle
	}
	return c.rec.Add(key, value, extras...)
}

// promoteURI rewrites a uri:-prefixed file payload as an explicit uri
// encoding, stripping the prefix.
func promoteURI(v Value) Value {
	switch v := v.(type) {
	case types.Scalar:
		if rest, ok := strings.CutPrefix(string(v), "uri:"); ok {
			return types.Typed{Value: rest, Encoding: "uri"}
		}
	case types.Typed:
		if rest, ok := strings.CutPrefix(v.Value, "uri:"); ok {
			v.Value = rest
			v.Encoding = "uri"
			return v
		}
	}
	return v
}
