// Package parse turns unfolded vCard text into records.
//
// The entry points assume the text has already been through unfold.Unfold:
// logical lines are newline-separated and soft fold points are marked with
// the unfold package's private sentinel.
package parse

import (
	"io"
	"mime/quotedprintable"
	"regexp"
	"strings"

	"github.com/simonhull/vcard/internal/charset"
	"github.com/simonhull/vcard/internal/params"
	"github.com/simonhull/vcard/internal/registry"
	"github.com/simonhull/vcard/internal/types"
	"github.com/simonhull/vcard/internal/unfold"
)

var (
	beginMarker = regexp.MustCompile(`(?im)^BEGIN:VCARD`)
	endMarker   = regexp.MustCompile(`(?im)^END:VCARD`)
	itemPrefix  = regexp.MustCompile(`^item(\d+)\.(.+)$`)
)

// CountMarkers returns the number of line-anchored BEGIN:VCARD and
// END:VCARD markers in unfolded text. The match is case-insensitive.
func CountMarkers(text string) (begins, ends int) {
	begins = len(beginMarker.FindAllStringIndex(text, -1))
	ends = len(endMarker.FindAllStringIndex(text, -1))
	return begins, ends
}

// SplitCards splits multi-card text on the BEGIN marker and returns each
// fragment with the marker re-attached, in source order. Blank fragments
// (typically text before the first marker) are dropped.
func SplitCards(text string) []string {
	fragments := beginMarker.Split(text, -1)
	cards := make([]string, 0, len(fragments))
	for _, frag := range fragments {
		if strings.TrimSpace(frag) == "" {
			continue
		}
		cards = append(cards, "BEGIN:VCARD"+frag)
	}
	return cards
}

// Single parses one unfolded single-card document into a record. Lines
// that carry no colon are noise and are silently dropped; below document
// level nothing here fails.
func Single(text string) *types.Record {
	rec := types.NewRecord()
	for line := range strings.Lines(text) {
		parseLine(rec, strings.TrimSuffix(line, "\n"))
	}
	return rec
}

func parseLine(rec *types.Record, line string) {
	if !strings.Contains(line, ":") {
		return
	}
	rawKey, rawValue, _ := strings.Cut(line, ":")

	// Only the base key is case-insensitive here; parameter tokens keep
	// their case so values like CHARSET labels reach params.Parse verbatim.
	tokens := strings.Split(unescape(rawKey), ";")
	baseKey := strings.ToLower(tokens[0])
	if baseKey == "begin" || baseKey == "end" {
		return
	}

	// An AGENT line embeds a whole sub-card as its value. Restore the fold
	// sentinels to line breaks and parse it as an independent record; no
	// other processing applies.
	if strings.HasPrefix(baseKey, "agent") && strings.Contains(strings.ToLower(rawValue), "begin:vcard") {
		rec.AppendNested("agent", Single(unfold.Restore(rawValue)))
		return
	}

	value := unescape(unfold.Strip(rawValue))

	if m := itemPrefix.FindStringSubmatch(baseKey); m != nil {
		// itemN. grouping prefix: the index is parsing metadata only and
		// is not surfaced on the record.
		baseKey = m[2]
	}

	set := params.Parse(baseKey, tokens[1:])
	// Quoted-printable text decodes to bytes in the source charset, so the
	// decode must run before the transcode.
	if set.Encoding == "quoted-printable" {
		value = decodeQuotedPrintable(value)
	}
	if set.Charset != "" {
		value = charset.ToUTF8(value, set.Charset)
	}
	if registry.IsFileKey(baseKey) && set.Encoding == "b" && strings.Contains(value, ":") {
		// Apple Address Book exports prefix base64 payloads with
		// colon-separated metadata; only the final segment is payload.
		segments := strings.Split(value, ":")
		value = segments[len(segments)-1]
	}

	rec.Append(baseKey, normalize(baseKey, value, set))
}

// unescape reverses vCard escaping of separators and drops raw embedded
// newlines that survived unfolding.
func unescape(s string) string {
	return strings.NewReplacer(
		`\:`, ":",
		`\;`, ";",
		`\,`, ",",
		"\n", "",
	).Replace(s)
}

func decodeQuotedPrintable(s string) string {
	decoded, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(s)))
	if err != nil {
		// Best effort: keep the raw text on malformed input.
		return s
	}
	return string(decoded)
}
