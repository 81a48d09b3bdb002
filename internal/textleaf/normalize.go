package textleaf

import "golang.org/x/text/unicode/norm"

// NormalizeForCompare returns s in Unicode NFC form, so two chunks that
// encode the same grapheme with different combining-mark orderings compare
// equal. Rope.Equals compares normalized forms when a byte-exact comparison
// fails; Diff and the search methods compare content as stored. Storage
// itself is left exactly as the caller wrote it.
func NormalizeForCompare(s string) string {
	return norm.NFC.String(s)
}
