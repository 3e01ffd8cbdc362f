// Package params decodes the parameter tokens attached to a property key.
package params

import (
	"strings"

	"github.com/simonhull/vcard/internal/registry"
)

// Set is the normalized result of parsing one property's parameter tokens.
type Set struct {
	// Types collects TYPE parameter values and legacy inline type words,
	// in source order.
	Types []string
	// Encoding is "quoted-printable", "b", or "uri" when detected,
	// empty otherwise. ENCODING=base64 normalizes to "b".
	Encoding string
	// Charset is the CHARSET parameter value, verbatim.
	Charset string
}

// Parse decodes the raw parameter tokens for the given base key. Tokens
// take the form name=value or a bare legacy type word. Unknown parameter
// names are ignored rather than rejected.
func Parse(key string, tokens []string) Set {
	var set Set
	for _, tok := range tokens {
		switch strings.Count(tok, "=") {
		case 0:
			// Legacy inline type, as in TEL;WORK:... Only words from the
			// key's vocabulary qualify; EMAIL historically accepts any.
			t := strings.ToLower(tok)
			if registry.AllowedType(key, t) || key == "email" {
				set.Types = append(set.Types, t)
			}
		case 1:
			name, value, _ := strings.Cut(tok, "=")
			switch strings.ToLower(name) {
			case "encoding":
				switch v := strings.ToLower(value); v {
				case "quoted-printable":
					set.Encoding = v
				case "b", "base64":
					set.Encoding = "b"
				}
			case "charset":
				set.Charset = value
			case "type":
				set.Types = append(set.Types, strings.Split(strings.ToLower(value), ",")...)
			case "value":
				if strings.EqualFold(value, "url") {
					set.Encoding = "uri"
				}
			}
		default:
			// A token with several "=" groups is really a comma-joined
			// list of tokens. Re-parse the pieces and merge only their
			// types; an empty result is an empty type list, not an error.
			nested := Parse(key, strings.Split(tok, ","))
			set.Types = append(set.Types, nested.Types...)
		}
	}
	return set
}
