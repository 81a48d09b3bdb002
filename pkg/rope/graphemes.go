package rope

import "github.com/clipperhouse/uax29/graphemes"

// Grapheme is one user-perceived character: a grapheme cluster together
// with the rune position (in the rope) at which it starts.
type Grapheme struct {
	Text string
	Pos  int
}

// GraphemeIterator walks a Rope one grapheme cluster at a time using
// Unicode's default grapheme cluster boundary rules (UAX #29).
type GraphemeIterator struct {
	clusters []Grapheme
	idx      int
}

// Graphemes returns a grapheme cluster iterator over r's content.
func (r *Rope) Graphemes() *GraphemeIterator {
	data := r.Bytes()
	seg := graphemes.NewSegmenter(data)

	var clusters []Grapheme
	pos := 0
	for seg.Next() {
		text := string(seg.Bytes())
		clusters = append(clusters, Grapheme{Text: text, Pos: pos})
		pos += len([]rune(text))
	}
	return &GraphemeIterator{idx: -1, clusters: clusters}
}

func (it *GraphemeIterator) Next() bool {
	if it.idx+1 >= len(it.clusters) {
		it.idx = len(it.clusters)
		return false
	}
	it.idx++
	return true
}

func (it *GraphemeIterator) Current() Grapheme { return it.clusters[it.idx] }
func (it *GraphemeIterator) Position() int     { return it.clusters[it.idx].Pos }
func (it *GraphemeIterator) Reset()            { it.idx = -1 }

var _ GraphemeIteratorBehavior = (*GraphemeIterator)(nil)
