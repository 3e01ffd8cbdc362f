package vcard_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/vcard"
)

// benchmarkCard builds a realistic single card with folded lines, typed
// entries, and structured fields.
func benchmarkCard() string {
	return "BEGIN:VCARD\r\n" +
		"VERSION:3.0\r\n" +
		"N:Gump;Forrest;;Mr.;\r\n" +
		"FN:Forrest Gump\r\n" +
		"ORG:Bubba Gump Shrimp Co.\r\n" +
		"TITLE:Shrimp Man\r\n" +
		"TEL;TYPE=work,voice:(111) 555-1212\r\n" +
		"TEL;TYPE=home,voice:(404) 555-1212\r\n" +
		"ADR;TYPE=work:;;100 Waters Edge;Baytown;LA;30314;United States\r\n" +
		"EMAIL;TYPE=pref,internet:forrestgump@example.com\r\n" +
		"NOTE:A note long enough to be folded across\r\n" +
		" two physical lines in the source\r\n" +
		"CATEGORIES:swimmer,shrimp farmer\r\n" +
		"END:VCARD\r\n"
}

func BenchmarkParse_Single(b *testing.B) {
	raw := benchmarkCard()
	b.ReportAllocs()

	for b.Loop() {
		if _, err := vcard.Parse(raw); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Multiple(b *testing.B) {
	raw := strings.Repeat(benchmarkCard(), 50)
	b.ReportAllocs()

	for b.Loop() {
		card, err := vcard.Parse(raw)
		if err != nil {
			b.Fatal(err)
		}
		if card.Count() != 50 {
			b.Fatalf("count = %d", card.Count())
		}
	}
}

func BenchmarkOpen(b *testing.B) {
	path := filepath.Join(b.TempDir(), "bench.vcf")
	if err := os.WriteFile(path, []byte(benchmarkCard()), 0o644); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()

	for b.Loop() {
		if _, err := vcard.Open(path); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSerialize(b *testing.B) {
	card, err := vcard.Parse(benchmarkCard())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()

	for b.Loop() {
		_ = card.Serialize()
	}
}
