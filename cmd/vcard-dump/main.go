// Command vcard-dump prints every property of the cards in a vCard file.
// Useful for checking what the parser actually extracts from a given file.
package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/simonhull/vcard"
)

func main() {
	collapse := flag.Bool("collapse", false, "enable collapsed reads for single-entry properties")
	serialize := flag.Bool("serialize", false, "re-emit the parsed document as vCard 3.0 text")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vcard-dump [--collapse] [--serialize] <file.vcf>")
		os.Exit(1)
	}

	var opts []vcard.Option
	if *collapse {
		opts = append(opts, vcard.WithCollapse())
	}

	card, err := vcard.Open(flag.Arg(0), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *serialize {
		fmt.Print(card.Serialize())
		return
	}

	fmt.Printf("%s: %s mode, %d record(s)\n", flag.Arg(0), card.Mode, card.Count())
	switch card.Mode {
	case vcard.ModeSingle:
		dumpRecord(card.Record(), 0)
	case vcard.ModeMultiple:
		for i, rec := range card.All() {
			fmt.Printf("--- record %d ---\n", i)
			dumpRecord(rec, 0)
		}
	}
}

func dumpRecord(rec *vcard.Record, depth int) {
	indent := strings.Repeat("  ", depth)
	for key, values := range rec.All() {
		for _, v := range values {
			if nested, ok := v.(vcard.Nested); ok {
				fmt.Printf("%s%s: %d embedded card(s)\n", indent, key, len(nested))
				for _, sub := range nested {
					dumpRecord(sub, depth+1)
				}
				continue
			}
			fmt.Printf("%s%s: %s\n", indent, key, formatValue(v))
		}
	}
}

func formatValue(v vcard.Value) string {
	switch v := v.(type) {
	case vcard.Scalar:
		return string(v)
	case vcard.Typed:
		var b strings.Builder
		b.WriteString(v.Value)
		if len(v.Types) > 0 {
			fmt.Fprintf(&b, " [type=%s]", strings.Join(v.Types, ","))
		}
		if v.Encoding != "" {
			fmt.Fprintf(&b, " [encoding=%s]", v.Encoding)
		}
		return b.String()
	case vcard.Structured:
		parts := make([]string, 0, len(v.PartNames))
		for _, name := range v.PartNames {
			if p, ok := v.Part(name); ok {
				parts = append(parts, name+"="+p)
			}
		}
		return strings.Join(parts, " ")
	case vcard.MultiText:
		return strings.Join(v, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}
