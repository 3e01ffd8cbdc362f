// Package charset converts legacy vCard CHARSET payloads to UTF-8.
package charset

import (
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// ToUTF8 decodes value from the named IANA charset. UTF-8 input, unknown
// charset labels, and undecodable bytes all pass through unchanged; a bad
// CHARSET parameter never fails a parse.
func ToUTF8(value, name string) string {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return value
	}
	enc, err := ianaindex.MIME.Encoding(name)
	if err != nil || enc == nil {
		return value
	}
	decoded, err := enc.NewDecoder().String(value)
	if err != nil {
		return value
	}
	return decoded
}
