package ic

import (
	"strings"

	"github.com/falategan/motif-conformation-finder/pdb"
)

//ResidueGeometry resolves internal coordinates for one residue of a
//polypeptide segment from Cartesian atom positions. The backbone torsions
//reach into the neighbouring residues of the segment, so the geometry is
//built from the whole residue run and the index of the residue within it.
type ResidueGeometry struct {
	table   *Table
	residue *pdb.Residue
	prev    *pdb.Residue //nil at the N-terminus of the segment
	next    *pdb.Residue //nil at the C-terminus
	letter  byte
}

//Geometry returns a resolver for residues[i]. The residues must be a
//contiguous polypeptide run; the caller keeps the backing structure alive
//for as long as the resolver is used.
func (t *Table) Geometry(residues []*pdb.Residue, i int) *ResidueGeometry {
	g := &ResidueGeometry{table: t, residue: residues[i]}
	g.letter, _ = residues[i].Letter()
	if i > 0 {
		g.prev = residues[i-1]
	}
	if i < len(residues)-1 {
		g.next = residues[i+1]
	}
	return g
}

//ResolveLength resolves a 2-atom identifier like "N:CA" to the distance
//between those atoms of the residue, in Angstroms.
func (g *ResidueGeometry) ResolveLength(id string) (float64, bool) {
	names := strings.Split(id, ":")
	if len(names) != 2 {
		return 0, false
	}
	a := g.residue.Atom(names[0])
	b := g.residue.Atom(names[1])
	if a == nil || b == nil {
		return 0, false
	}
	return Distance(a.Pos(), b.Pos()), true
}

//ResolveAngle resolves a 3-atom identifier like "N:CA:C" to the bond angle
//at the middle atom, or a torsion name like "phi" or "chi1" to the
//dihedral, in degrees.
func (g *ResidueGeometry) ResolveAngle(id string) (float64, bool) {
	if strings.Contains(id, ":") {
		names := strings.Split(id, ":")
		if len(names) != 3 {
			return 0, false
		}
		a := g.residue.Atom(names[0])
		b := g.residue.Atom(names[1])
		c := g.residue.Atom(names[2])
		if a == nil || b == nil || c == nil {
			return 0, false
		}
		return Angle(a.Pos(), b.Pos(), c.Pos()) * rad2deg, true
	}
	atoms, ok := g.torsion(id)
	if !ok {
		return 0, false
	}
	return Dihedral(atoms[0].Pos(), atoms[1].Pos(), atoms[2].Pos(), atoms[3].Pos()) * rad2deg, true
}

//torsion fetches the four atoms of a named torsion. phi, psi and omega
//span the peptide bond and need a neighbouring residue; the chi torsions
//lie within the residue and follow the sidechain definition table.
func (g *ResidueGeometry) torsion(name string) ([4]*pdb.Atom, bool) {
	var atoms [4]*pdb.Atom
	switch name {
	case "phi":
		if g.prev == nil {
			return atoms, false
		}
		atoms[0] = g.prev.Atom("C")
		atoms[1] = g.residue.Atom("N")
		atoms[2] = g.residue.Atom("CA")
		atoms[3] = g.residue.Atom("C")
	case "psi":
		if g.next == nil {
			return atoms, false
		}
		atoms[0] = g.residue.Atom("N")
		atoms[1] = g.residue.Atom("CA")
		atoms[2] = g.residue.Atom("C")
		atoms[3] = g.next.Atom("N")
	case "omega":
		if g.prev == nil {
			return atoms, false
		}
		atoms[0] = g.prev.Atom("CA")
		atoms[1] = g.prev.Atom("C")
		atoms[2] = g.residue.Atom("N")
		atoms[3] = g.residue.Atom("CA")
	default:
		names := g.table.TorsionAtoms(g.letter, name)
		if names == nil {
			return atoms, false
		}
		for i, atomName := range names {
			atoms[i] = g.residue.Atom(atomName)
		}
	}
	for _, at := range atoms {
		if at == nil {
			return atoms, false
		}
	}
	return atoms, true
}
