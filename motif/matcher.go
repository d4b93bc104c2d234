package motif

import (
	"fmt"
	"strings"

	"github.com/falategan/motif-conformation-finder/pdb"
)

//Match is one occurrence of the motif: the matched residues and the offset
//of the first one within the segment.
type Match struct {
	Start    int
	Residues []*pdb.Residue
}

//Matcher finds the occurrences of a motif within one segment, one per Next
//call. After a match at offset i the search restarts at i+len(motif), so an
//occurrence starting inside a previous match is never reported. A matcher
//is single-pass; to restart, build a new one.
type Matcher struct {
	segment *Segment
	motif   string
	seq     string
	pos     int
}

//NewMatcher returns a matcher for the motif, given in 1-letter amino-acid
//codes. An empty motif is rejected.
func NewMatcher(segment *Segment, motif string) (*Matcher, error) {
	if motif == "" {
		return nil, fmt.Errorf("empty motif")
	}
	return &Matcher{segment: segment, motif: motif, seq: segment.Sequence()}, nil
}

//Next returns the next occurrence of the motif, or false when there is
//none left.
func (m *Matcher) Next() (Match, bool) {
	i := strings.Index(m.seq[m.pos:], m.motif)
	if i < 0 {
		return Match{}, false
	}
	start := m.pos + i
	end := start + len(m.motif)
	m.pos = end
	return Match{Start: start, Residues: m.segment.Residues[start:end]}, true
}
