package vcard

import (
	"context"
	"fmt"
	"iter"
	"os"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/vcard/internal/parse"
	"github.com/simonhull/vcard/internal/types"
	"github.com/simonhull/vcard/internal/unfold"
)

// Mode says how many cards a parsed document carried.
type Mode int

const (
	// ModeUnresolved is the zero value before parsing resolves a mode.
	ModeUnresolved Mode = iota
	// ModeSingle marks a document with exactly one BEGIN/END pair.
	ModeSingle
	// ModeMultiple marks a document holding two or more cards.
	ModeMultiple
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "Single"
	case ModeMultiple:
		return "Multiple"
	default:
		return "Unresolved"
	}
}

// Card is a parsed vCard document.
//
// A document holds either one record (ModeSingle) or an ordered list of
// sub-records (ModeMultiple); the mode is resolved from the BEGIN/END
// marker count at parse time. In multiple mode the document has no
// properties of its own — the children are its sole content.
//
// A Card is immutable from the reader's perspective; the only write path
// is Add, which appends into the existing ordered sequences.
type Card struct {
	// Path of the source file, empty when parsed from raw text.
	Path string

	// Mode says whether the source held one card or several.
	Mode Mode

	rec      *types.Record
	children []*types.Record
	collapse bool
}

// Parse parses raw vCard text.
//
// Empty input returns NoContentError. Missing or unbalanced BEGIN/END
// markers return InvalidDocumentError. Below document level the parser is
// tolerant: malformed lines are skipped, unknown keys are stored under
// their own name, unknown parameters are ignored.
//
// Example:
//
//	card, err := vcard.Parse(text)
//	if err != nil {
//		return err
//	}
//	for _, v := range card.Get("tel") {
//		fmt.Println(v)
//	}
func Parse(raw string, opts ...Option) (*Card, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	if raw == "" {
		return nil, &NoContentError{}
	}
	return parseText(raw, "", options)
}

// Open reads and parses the vCard file at path.
//
// The file is read as UTF-8-ish text; CR and CRLF line endings are
// normalized during unfolding. An empty path returns NoContentError; an
// unreachable path surfaces the underlying I/O error.
func Open(path string, opts ...Option) (*Card, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	if path == "" {
		return nil, &NoContentError{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return parseText(string(data), path, options)
}

// New returns an empty single-mode card for programmatic construction
// through Add, typically followed by Serialize.
func New(opts ...Option) *Card {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &Card{
		Mode:     ModeSingle,
		rec:      types.NewRecord(),
		collapse: options.collapse,
	}
}

func parseText(raw, path string, options *parseOptions) (*Card, error) {
	text := unfold.Unfold(raw)

	begins, ends := parse.CountMarkers(text)
	if begins == 0 || begins != ends {
		return nil, &InvalidDocumentError{Begins: begins, Ends: ends}
	}

	card := &Card{Path: path, collapse: options.collapse}
	if begins == 1 {
		card.Mode = ModeSingle
		card.rec = parse.Single(text)
		return card, nil
	}

	card.Mode = ModeMultiple
	for _, fragment := range parse.SplitCards(text) {
		card.children = append(card.children, parse.Single(fragment))
	}
	return card, nil
}

// OpenMany opens multiple vCard files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails, the first error is returned and the partial results are dropped.
func OpenMany(ctx context.Context, paths ...string) ([]*Card, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Card, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			card, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = card
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Count reports the number of records: 1 in single mode, the number of
// children in multiple mode, 0 before a mode is resolved.
func (c *Card) Count() int {
	switch c.Mode {
	case ModeSingle:
		return 1
	case ModeMultiple:
		return len(c.children)
	default:
		return 0
	}
}

// All iterates the child records of a multiple-mode document in source
// order, yielding each child's position. Single-mode documents yield
// nothing; use Record instead.
//
// Example:
//
//	for i, rec := range card.All() {
//		fmt.Println(i, rec.Get("fn"))
//	}
func (c *Card) All() iter.Seq2[int, *Record] {
	return func(yield func(int, *Record) bool) {
		if c.Mode != ModeMultiple {
			return
		}
		for i, rec := range c.children {
			if !yield(i, rec) {
				return
			}
		}
	}
}

// Records returns the child records of a multiple-mode document in source
// order. The slice is a copy.
func (c *Card) Records() []*Record {
	return slices.Clone(c.children)
}

// Record returns the record of a single-mode document, nil otherwise.
func (c *Card) Record() *Record {
	return c.rec
}
