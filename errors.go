package vcard

import (
	"github.com/simonhull/vcard/internal/types"
)

// NoContentError is an alias to types.NoContentError.
// Re-exporting from internal/types to keep the public API in one package.
type NoContentError = types.NoContentError

// InvalidDocumentError is an alias to types.InvalidDocumentError.
// Re-exporting from internal/types to keep the public API in one package.
type InvalidDocumentError = types.InvalidDocumentError
