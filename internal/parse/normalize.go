package parse

import (
	"strings"

	"github.com/simonhull/vcard/internal/params"
	"github.com/simonhull/vcard/internal/registry"
	"github.com/simonhull/vcard/internal/types"
)

// normalize shapes a decoded value according to the base key's registry
// entry: fixed structured parts, a comma list, a typed wrapper, or a plain
// scalar. A detected encoding always rides along on the result, promoting
// a scalar to a Typed carrying only Value and Encoding.
func normalize(key, value string, set params.Set) types.Value {
	if partNames, ok := registry.StructuredParts(key); ok {
		return structured(partNames, value, set)
	}
	if registry.IsMultiValue(key) {
		return types.MultiText(strings.Split(value, ","))
	}
	if len(set.Types) > 0 || set.Encoding != "" {
		return types.Typed{Value: value, Types: set.Types, Encoding: set.Encoding}
	}
	return types.Scalar(value)
}

// structured zips the semicolon-separated source parts against the
// registered part names. Missing trailing parts stay null; source parts
// beyond the registered count are discarded.
func structured(partNames []string, value string, set params.Set) types.Structured {
	raw := strings.Split(value, ";")
	parts := make(map[string]string, len(partNames))
	for i, name := range partNames {
		if i >= len(raw) {
			break
		}
		if p := strings.TrimSpace(raw[i]); p != "" {
			parts[name] = p
		}
	}
	return types.Structured{
		PartNames: partNames,
		Parts:     parts,
		Types:     set.Types,
		Encoding:  set.Encoding,
	}
}
