package types

import "fmt"

// NoContentError is returned when construction is attempted with no input:
// an empty path or empty raw text.
type NoContentError struct{}

func (e *NoContentError) Error() string {
	return "vcard: no content provided"
}

// InvalidDocumentError is returned when the BEGIN:VCARD/END:VCARD markers
// are absent or unbalanced. The error is fatal to construction; there is
// no partial-success record.
type InvalidDocumentError struct {
	Begins int
	Ends   int
}

func (e *InvalidDocumentError) Error() string {
	if e.Begins == 0 && e.Ends == 0 {
		return "vcard: no BEGIN:VCARD/END:VCARD markers found"
	}
	return fmt.Sprintf("vcard: unbalanced markers: %d BEGIN, %d END", e.Begins, e.Ends)
}
