package vcard

import (
	"github.com/simonhull/vcard/internal/types"
)

// Record is an alias to types.Record.
// Re-exporting from internal/types to keep the public API in one package.
type Record = types.Record

// Value is an alias to types.Value.
// Re-exporting from internal/types to keep the public API in one package.
type Value = types.Value

// Scalar is an alias to types.Scalar.
// Re-exporting from internal/types to keep the public API in one package.
type Scalar = types.Scalar

// Typed is an alias to types.Typed.
// Re-exporting from internal/types to keep the public API in one package.
type Typed = types.Typed

// Structured is an alias to types.Structured.
// Re-exporting from internal/types to keep the public API in one package.
type Structured = types.Structured

// MultiText is an alias to types.MultiText.
// Re-exporting from internal/types to keep the public API in one package.
type MultiText = types.MultiText

// Nested is an alias to types.Nested.
// Re-exporting from internal/types to keep the public API in one package.
type Nested = types.Nested
