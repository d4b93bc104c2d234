/*
 * table.go, part of motif-conformation-finder
 *
 * Copyright 2026 F. A. Lategan
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
*/

package ic

import "strings"

//Coordinate categories.
const (
	BondAngle     = "bond_angle"
	DihedralAngle = "dihedral_angle"
	BondLength    = "bond_length"
)

//dihedralKeys are the named torsions asked for on every residue,
//whatever its type.
var dihedralKeys = []string{"phi", "psi", "omega", "chi1", "chi2", "chi3", "chi4", "chi5"}

//Coordinate is one internal-coordinate value: its category, its identifier
//(a colon-joined atom chain like "N:CA:C", or a torsion name like "phi"),
//and the value in degrees for angles or Angstroms for lengths.
type Coordinate struct {
	Category string
	ID       string
	Value    float64
}

//Resolver retrieves one internal-coordinate value for one residue
//instance. The boolean is false when the chain is not resolvable for that
//instance, e.g. a phi angle at an N-terminus; that is not an error.
type Resolver interface {
	ResolveAngle(id string) (float64, bool)
	ResolveLength(id string) (float64, bool)
}

//Table maps each standard amino acid to the named internal coordinates
//applicable to it. It is immutable once built; build it once at program
//start and share it.
type Table struct {
	backboneAngles  []string
	backboneBonds   []string
	sidechainAngles map[byte][]string
	sidechainBonds  map[byte][]string
	torsionAtoms    map[byte]map[string][]string
}

//NewTable builds the coordinate table from the reference atom-chain data:
//bond-angle identifiers are the filtered 3-atom chains, bond identifiers
//the consecutive pairs within them, and the sidechain torsion atoms come
//from the labelled 4-atom chains.
func NewTable() *Table {
	t := &Table{
		sidechainAngles: make(map[byte][]string),
		sidechainBonds:  make(map[byte][]string),
		torsionAtoms:    make(map[byte]map[string][]string),
	}
	backboneTriads := triads(backboneChains)
	t.backboneAngles = joinChains(backboneTriads)
	t.backboneBonds = bonds(backboneTriads)
	for letter, chains := range sidechainChains {
		merged := make([][]string, 0, len(chains)+len(sidechainExtras[letter]))
		merged = append(merged, chains...)
		merged = append(merged, sidechainExtras[letter]...)
		sidechainTriads := triads(merged)
		t.sidechainAngles[letter] = joinChains(sidechainTriads)
		t.sidechainBonds[letter] = bonds(sidechainTriads)
		t.torsionAtoms[letter] = torsions(merged)
	}
	return t
}

//hasMarker says whether any atom name in the chain contains the 'H'
//marker, which flags hydrogens and the reference points the hedra tables
//use for non-physical atoms.
func hasMarker(chain []string) bool {
	for _, name := range chain {
		if strings.Contains(name, "H") {
			return true
		}
	}
	return false
}

//triads keeps the 3-atom chains with no marker atom.
func triads(chains [][]string) [][]string {
	var kept [][]string
	for _, chain := range chains {
		if len(chain) == 3 && !hasMarker(chain) {
			kept = append(kept, chain)
		}
	}
	return kept
}

//joinChains turns atom chains into colon-joined identifiers.
func joinChains(chains [][]string) []string {
	ids := make([]string, 0, len(chains))
	for _, chain := range chains {
		ids = append(ids, strings.Join(chain, ":"))
	}
	return ids
}

//bonds extracts the consecutive 2-atom pairs of each triad, each pair
//once, in first-seen order. The order matters: rows are emitted in it, and
//two runs over the same input must produce identical output.
func bonds(triads [][]string) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, triad := range triads {
		for _, pair := range []string{
			triad[0] + ":" + triad[1],
			triad[1] + ":" + triad[2],
		} {
			if !seen[pair] {
				seen[pair] = true
				ids = append(ids, pair)
			}
		}
	}
	return ids
}

//torsions collects the labelled 4-atom chains: label -> atom names.
func torsions(chains [][]string) map[string][]string {
	named := make(map[string][]string)
	for _, chain := range chains {
		if len(chain) == 5 {
			named[chain[4]] = chain[:4]
		}
	}
	return named
}

//TorsionAtoms returns the atom names of the named sidechain torsion for
//the residue type, or nil if the type has no such torsion.
func (t *Table) TorsionAtoms(letter byte, name string) []string {
	return t.torsionAtoms[letter][name]
}

//Coordinates resolves the full coordinate set for one residue of the given
//type: bond angles first, then the named dihedrals, then bond lengths,
//backbone identifiers before sidechain ones. Identifiers the resolver
//cannot resolve for this residue instance are omitted.
func (t *Table) Coordinates(letter byte, res Resolver) []Coordinate {
	var coords []Coordinate
	angles := append([]string{}, t.backboneAngles...)
	angles = append(angles, t.sidechainAngles[letter]...)
	for _, id := range angles {
		if value, ok := res.ResolveAngle(id); ok {
			coords = append(coords, Coordinate{BondAngle, id, value})
		}
	}
	for _, id := range dihedralKeys {
		if value, ok := res.ResolveAngle(id); ok {
			coords = append(coords, Coordinate{DihedralAngle, id, value})
		}
	}
	lengths := append([]string{}, t.backboneBonds...)
	lengths = append(lengths, t.sidechainBonds[letter]...)
	for _, id := range lengths {
		if value, ok := res.ResolveLength(id); ok {
			coords = append(coords, Coordinate{BondLength, id, value})
		}
	}
	return coords
}
