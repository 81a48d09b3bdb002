package rope

import "github.com/sergi/go-diff/diffmatchpatch"

// Diff computes a line-aware textual diff between a and b's content. It
// exists at the facade level rather than the tree core because diffing is a
// content-comparison concern, unrelated to how either rope's bytes are
// physically chunked.
func Diff(a, b *Rope) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	wSrc, wDst, lines := dmp.DiffLinesToChars(a.String(), b.String())
	diffs := dmp.DiffMain(wSrc, wDst, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	return dmp.DiffCleanupSemantic(diffs)
}

// DiffText renders Diff's result with diffmatchpatch's DiffPrettyText: the
// full text of both sides merged in order, with insertions and deletions
// wrapped in ANSI color escapes. Convenient for terminal output.
func DiffText(a, b *Rope) string {
	dmp := diffmatchpatch.New()
	return dmp.DiffPrettyText(Diff(a, b))
}
