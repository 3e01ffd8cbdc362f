// Package unfold reassembles folded vCard lines into logical lines.
//
// vCard text wraps long lines two ways: soft wraps (a line break followed
// by a space or tab) and quoted-printable hard wraps (a trailing "=" before
// the break). Unfold joins both, leaving a private sentinel at each soft
// fold point so later stages can still locate it: ordinary values strip the
// sentinel, embedded AGENT cards restore it to a line break before
// re-parsing.
package unfold

import (
	"regexp"
	"strings"
)

const (
	// foldMark replaces a soft-wrap break plus its leading indent.
	foldMark = "\x00fold\x00"
	// eqMark protects the trailing "=" of a base64 continuation line from
	// the quoted-printable join, which deletes every "=\n".
	eqMark = "\x00eq\x00"
)

var (
	newlineRun = regexp.MustCompile(`\n+`)
	base64Tail = regexp.MustCompile(`(\n[ \t].*)=\n`)
)

// Unfold normalizes line endings and joins folded lines. The step order
// matters: the base64 "=" must be protected before the quoted-printable
// join runs, and soft wraps are substituted after it. Unfold never fails;
// garbage input simply yields lines the tokenizer will discard.
func Unfold(raw string) string {
	s := strings.ReplaceAll(raw, "\r", "\n")
	s = newlineRun.ReplaceAllString(s, "\n")
	s = base64Tail.ReplaceAllString(s, "$1"+eqMark+"\n")
	s = strings.ReplaceAll(s, "=\n", "")
	s = strings.NewReplacer("\n ", foldMark, "\n\t", foldMark).Replace(s)
	return strings.ReplaceAll(s, eqMark, "=")
}

// Strip removes fold sentinels from a logical value.
func Strip(s string) string {
	return strings.ReplaceAll(s, foldMark, "")
}

// Restore turns fold sentinels back into line breaks, recovering the
// physical lines of an embedded sub-card.
func Restore(s string) string {
	return strings.ReplaceAll(s, foldMark, "\n")
}
