// Package vcard parses vCard text documents (RFC 2425/2426 style) into
// structured records and serializes records back to text.
//
// The package handles the messy parts of real-world vCard data: folded
// lines, quoted-printable and base64 wrapping, legacy inline TYPE words,
// CHARSET transcoding, structured fields (N, ADR, GEO, ORG), multi-value
// fields (NICKNAME, CATEGORIES), and embedded AGENT sub-cards.
//
// # Quick Start
//
// Reading a contact file:
//
//	card, err := vcard.Open("contact.vcf")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, v := range card.Get("tel") {
//		if tel, ok := v.(vcard.Typed); ok {
//			fmt.Printf("%s (%v)\n", tel.Value, tel.Types)
//		}
//	}
//
// # Data Model
//
// Every property value is one of five variants, and consumers switch on
// the concrete type:
//
//   - [Scalar]: plain text (FN, NOTE, TITLE)
//   - [Typed]: text with TYPE words or an encoding (TEL, EMAIL, PHOTO)
//   - [Structured]: fixed named parts (N, ADR, GEO, ORG)
//   - [MultiText]: comma lists (NICKNAME, CATEGORIES)
//   - [Nested]: embedded AGENT sub-cards
//
// Keys are stored lowercase in source order, and a key may repeat: two TEL
// lines append two entries under "tel".
//
// # Multiple Cards
//
// A file may concatenate several BEGIN:VCARD/END:VCARD blocks. The
// resolved [Mode] says which shape you got:
//
//	card, err := vcard.Open("team.vcf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i, rec := range card.All() {
//		fmt.Println(i, rec.Get("fn"))
//	}
//
// Batch parsing across files uses OpenMany, which fans out with errgroup:
//
//	cards, err := vcard.OpenMany(ctx, paths...)
//
// # Error Handling
//
// Only three conditions fail construction: no input ([NoContentError]), an
// unreadable path (the wrapped I/O error), and missing or unbalanced
// BEGIN/END markers ([InvalidDocumentError]). Everything below document
// level degrades gracefully: malformed lines are skipped, unknown keys are
// stored under their own name, unknown parameters are ignored, and missing
// structured parts read back as absent.
//
// # Serialization
//
// Serialize emits vCard 3.0 text. The round trip is approximate by design:
// payloads and structured parts survive, parameter order and charset or
// encoding tags do not.
//
//	card := vcard.New()
//	card.Add("n", "Doe", "LastName").
//		Add("n", "John", "FirstName").
//		Add("tel", "555-1212", "work")
//	fmt.Print(card.Serialize())
package vcard
