//Package motif cuts protein chains into contiguous polypeptide segments and
//finds the occurrences of a sequence motif within them.
package motif

import (
	"log"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/falategan/motif-conformation-finder/pdb"
)

//maxPeptideBond is the largest C->N distance, in Angstroms, still accepted
//as a peptide bond between consecutive residues.
const maxPeptideBond = 1.8

//Segment is a contiguous run of amino-acid residues in one chain of one
//model. The residues are borrowed from the loaded structure, which must
//outlive the segment.
type Segment struct {
	ProteinID   string
	ModelNumber int
	ChainID     string
	Residues    []*pdb.Residue
}

//Sequence returns the 1-letter amino-acid sequence of the segment. It is
//recomputed from the residues on every call.
func (s *Segment) Sequence() string {
	seq := make([]byte, 0, len(s.Residues))
	for _, res := range s.Residues {
		letter, ok := res.Letter()
		if !ok {
			letter = 'X'
		}
		seq = append(seq, letter)
	}
	return string(seq)
}

//Segments cuts the requested chains of every model of the structure into
//contiguous polypeptide segments. A requested chain absent from a model is
//reported on standard error and skipped; the other chains and models go on.
func Segments(s *pdb.Structure, chainIDs []string) []*Segment {
	var segments []*Segment
	for _, model := range s.Models {
		for _, chainID := range chainIDs {
			chain := model.Chain(chainID)
			if chain == nil {
				log.Printf("warning: model %d of structure %s does not contain chain %s",
					model.Number, s.ID, chainID)
				continue
			}
			for _, run := range polypeptides(chain) {
				segments = append(segments, &Segment{
					ProteinID:   s.ID,
					ModelNumber: model.Number,
					ChainID:     chainID,
					Residues:    run,
				})
			}
		}
	}
	return segments
}

//polypeptides splits a chain into runs of amino-acid residues joined by
//peptide bonds. A residue missing any of its N, CA or C backbone atoms, or
//too far from its predecessor to be bonded, breaks the run. Following the
//usual polypeptide-builder convention, a lone residue is not a polypeptide
//and is dropped.
func polypeptides(chain *pdb.Chain) [][]*pdb.Residue {
	var runs [][]*pdb.Residue
	var run []*pdb.Residue
	flush := func() {
		if len(run) >= 2 {
			runs = append(runs, run)
		}
		run = nil
	}
	for _, res := range chain.Residues {
		if !res.IsAminoAcid() || res.Atom("N") == nil ||
			res.Atom("CA") == nil || res.Atom("C") == nil {
			flush()
			continue
		}
		if len(run) > 0 && !bonded(run[len(run)-1], res) {
			flush()
		}
		run = append(run, res)
	}
	flush()
	return runs
}

//bonded says whether the C of prev and the N of next are close enough to
//form a peptide bond.
func bonded(prev, next *pdb.Residue) bool {
	c := prev.Atom("C")
	n := next.Atom("N")
	if c == nil || n == nil {
		return false
	}
	return r3.Norm(r3.Sub(c.Pos(), n.Pos())) <= maxPeptideBond
}
