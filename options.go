package vcard

// Option configures behavior when parsing vCard documents.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	card, err := vcard.Open("contact.vcf", vcard.WithCollapse())
type Option func(*parseOptions)

// parseOptions holds configuration for parsing documents.
type parseOptions struct {
	collapse bool // Single-entry keys read back as the entry itself
}

// defaultOptions returns the default configuration.
func defaultOptions() *parseOptions {
	return &parseOptions{
		collapse: false,
	}
}

// WithCollapse enables collapsed reads for single-entry properties.
//
// By default every accessor read returns the full ordered sequence for a
// key. With collapse enabled, Collapsed returns the sole entry directly
// when a key holds exactly one value. AGENT entries never collapse.
//
// Example:
//
//	card, err := vcard.Parse(text, vcard.WithCollapse())
//	if v, ok := card.Collapsed("fn"); ok {
//		fmt.Println(v)
//	}
func WithCollapse() Option {
	return func(o *parseOptions) {
		o.collapse = true
	}
}
