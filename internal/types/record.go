package types

import (
	"iter"
	"slices"
	"strings"

	"github.com/elliotchance/orderedmap/v3"

	"github.com/simonhull/vcard/internal/registry"
)

// Record owns the ordered mapping from lowercase property key to the
// ordered values parsed for that key. Insertion order matches source order,
// and a key may repeat across source lines: each TEL line appends another
// entry under "tel".
type Record struct {
	props *orderedmap.OrderedMap[string, []Value]
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{props: orderedmap.NewOrderedMap[string, []Value]()}
}

// Get returns the stored values for key in source order. Absent keys
// return an empty slice, never an error.
//
// The returned slice is a copy; mutating it does not affect the record.
func (r *Record) Get(key string) []Value {
	values, ok := r.props.Get(strings.ToLower(key))
	if !ok {
		return nil
	}
	return slices.Clone(values)
}

// Has reports whether any values are stored under key.
func (r *Record) Has(key string) bool {
	values, ok := r.props.Get(strings.ToLower(key))
	return ok && len(values) > 0
}

// Len returns the number of distinct property keys.
func (r *Record) Len() int {
	return r.props.Len()
}

// All iterates key/values pairs in insertion order.
func (r *Record) All() iter.Seq2[string, []Value] {
	return r.props.AllFromFront()
}

// Append stores a parsed value under key, creating the sequence if absent.
func (r *Record) Append(key string, v Value) {
	key = strings.ToLower(key)
	values, _ := r.props.Get(key)
	r.props.Set(key, append(values, v))
}

// AppendNested appends a sub-record to the Nested entry for key, creating
// the entry if absent. All sub-records for a key share one Nested value.
func (r *Record) AppendNested(key string, sub *Record) {
	key = strings.ToLower(key)
	values, _ := r.props.Get(key)
	if n := len(values); n > 0 {
		if nested, ok := values[n-1].(Nested); ok {
			values[n-1] = append(nested, sub)
			r.props.Set(key, values)
			return
		}
	}
	r.props.Set(key, append(values, Nested{sub}))
}

// Add appends a property for programmatic construction and returns the
// record for chaining.
//
// With no extras the value is stored as a plain scalar. When extras are
// given and key is a structured element whose parts include extras[0], the
// value fills that slot on the last entry if the slot is still empty, or
// starts a new entry holding only that slot. When key is a typed element
// instead, the extras become the entry's types. Extras on any other key
// are dropped.
func (r *Record) Add(key, value string, extras ...string) *Record {
	key = strings.ToLower(key)
	if len(extras) == 0 {
		r.Append(key, Scalar(value))
		return r
	}
	if parts, ok := registry.StructuredParts(key); ok && slices.Contains(parts, extras[0]) {
		r.addPart(key, parts, extras[0], value)
		return r
	}
	if registry.IsTyped(key) {
		r.Append(key, Typed{Value: value, Types: slices.Clone(extras)})
		return r
	}
	r.Append(key, Scalar(value))
	return r
}

func (r *Record) addPart(key string, partNames []string, part, value string) {
	values, _ := r.props.Get(key)
	if n := len(values); n > 0 {
		if last, ok := values[n-1].(Structured); ok {
			if _, filled := last.Parts[part]; !filled {
				last.Parts[part] = value
				values[n-1] = last
				r.props.Set(key, values)
				return
			}
		}
	}
	s := Structured{
		PartNames: partNames,
		Parts:     map[string]string{part: value},
	}
	r.props.Set(key, append(values, s))
}
