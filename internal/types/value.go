// Package types provides the core data structures for parsed vCards.
//
// This package defines the Value variants, the ordered Record store, and
// the error types shared by the parsing and serialization layers.
package types

// Value is a parsed property value. Exactly one of the concrete types
// Scalar, Typed, Structured, MultiText, or Nested is stored per entry.
// Consumers switch on the concrete type instead of probing strings.
type Value interface {
	isValue()
}

// Scalar is a plain text value with no parameters.
type Scalar string

func (Scalar) isValue() {}

// String returns the raw text.
func (s Scalar) String() string { return string(s) }

// Typed is a text value carrying TYPE parameters, an encoding, or both.
//
// A value with an encoding but no types (a base64 PHOTO, a uri-promoted
// payload) is represented as a Typed with an empty Types list.
type Typed struct {
	Value    string
	Types    []string
	Encoding string
}

func (Typed) isValue() {}

// Structured is a fixed-arity value such as N or ADR.
//
// PartNames holds the registered part names in order. Parts holds only the
// parts present in the source; a name absent from Parts is null. The part
// count is fixed by the registry: missing trailing source parts stay null
// and excess source parts are discarded at parse time.
type Structured struct {
	PartNames []string
	Parts     map[string]string
	Types     []string
	Encoding  string
}

func (Structured) isValue() {}

// Part returns the named part and whether it was present in the source.
func (s Structured) Part(name string) (string, bool) {
	v, ok := s.Parts[name]
	return v, ok
}

// MultiText is an ordered comma-separated list value (NICKNAME, CATEGORIES).
type MultiText []string

func (MultiText) isValue() {}

// Nested is an ordered sequence of embedded sub-records. Only AGENT
// properties produce it.
type Nested []*Record

func (Nested) isValue() {}
