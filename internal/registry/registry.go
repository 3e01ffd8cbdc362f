// Package registry holds the process-wide vCard property lookup tables.
//
// The tables are initialized at package load and never mutated afterwards,
// so they are safe to share across any number of concurrent parses.
package registry

import "slices"

// structuredParts maps structured property keys to their fixed, ordered
// part names. The parser zips a raw value against this list; the
// serializer joins parts back in this order.
var structuredParts = map[string][]string{
	"n":   {"LastName", "FirstName", "AdditionalNames", "Prefixes", "Suffixes"},
	"adr": {"POBox", "ExtendedAddress", "StreetAddress", "Locality", "Region", "PostalCode", "Country"},
	"geo": {"Latitude", "Longitude"},
	"org": {"Name", "Unit1", "Unit2"},
}

// multiValue lists keys whose value is a comma-separated list of free text.
var multiValue = map[string]bool{
	"nickname":   true,
	"categories": true,
}

// typeVocabulary maps typed property keys to the legacy inline TYPE words
// they accept. A bare parameter token counts as a type only if it appears
// here; EMAIL is the lax exception, handled by the parameter parser.
var typeVocabulary = map[string][]string{
	"email": {"internet", "x400", "pref"},
	"adr":   {"dom", "intl", "postal", "parcel", "home", "work", "pref"},
	"label": {"dom", "intl", "postal", "parcel", "home", "work", "pref"},
	"tel": {
		"home", "msg", "work", "pref", "voice", "fax", "cell", "video",
		"pager", "bbs", "modem", "car", "isdn", "pcs",
	},
	"impp": {"personal", "business", "home", "work", "mobile", "pref"},
}

// fileKeys lists keys whose payload is binary or externally referenced.
var fileKeys = map[string]bool{
	"photo": true,
	"logo":  true,
	"sound": true,
}

// StructuredParts returns the ordered part names for a structured key.
func StructuredParts(key string) ([]string, bool) {
	parts, ok := structuredParts[key]
	return parts, ok
}

// IsStructured reports whether key decomposes into fixed named parts.
func IsStructured(key string) bool {
	_, ok := structuredParts[key]
	return ok
}

// IsMultiValue reports whether key holds a comma-separated list.
func IsMultiValue(key string) bool {
	return multiValue[key]
}

// IsTyped reports whether key carries a TYPE vocabulary.
func IsTyped(key string) bool {
	_, ok := typeVocabulary[key]
	return ok
}

// AllowedType reports whether t is a registered inline type word for key.
func AllowedType(key, t string) bool {
	return slices.Contains(typeVocabulary[key], t)
}

// IsFileKey reports whether key names a file-bearing property.
func IsFileKey(key string) bool {
	return fileKeys[key]
}
