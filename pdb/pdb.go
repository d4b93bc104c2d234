/*
 * pdb.go, part of motif-conformation-finder
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

//Package pdb reads protein structures from files in the legacy fixed-column
//PDB format or the tag-based mmCIF format, optionally gzip-compressed, and
//holds them as Structure/Model/Chain/Residue/Atom values.
package pdb

import (
	"gonum.org/v1/gonum/spatial/r3"
)

//A map between 3-letter names for aminoacidic residues and the corresponding
//1-letter names.
var three2OneLetter = map[string]byte{
	"SER": 'S',
	"THR": 'T',
	"ASN": 'N',
	"GLN": 'Q',
	"SEC": 'U', //Selenocysteine!
	"CYS": 'C',
	"GLY": 'G',
	"PRO": 'P',
	"ALA": 'A',
	"VAL": 'V',
	"ILE": 'I',
	"LEU": 'L',
	"MET": 'M',
	"PHE": 'F',
	"TYR": 'Y',
	"TRP": 'W',
	"ARG": 'R',
	"HIS": 'H',
	"LYS": 'K',
	"ASP": 'D',
	"GLU": 'E',
}

//Atom contains one atom read from a structure file. Coordinates are in
//Angstroms.
type Atom struct {
	Name      string
	Number    int
	X         float64
	Y         float64
	Z         float64
	Occupancy float64
	BFactor   float64
	Element   string
}

//Pos returns the Cartesian position of the atom as a gonum 3D vector.
func (a *Atom) Pos() r3.Vec {
	return r3.Vec{X: a.X, Y: a.Y, Z: a.Z}
}

//Residue is one residue of one chain, with the atoms read for it.
//Het is true for HETATM entries (waters, ligands, modified residues).
type Residue struct {
	Name      string //3-letter name, e.g. ALA or PRO
	Number    int
	Insertion string
	Het       bool
	Atoms     []*Atom
}

//Atom returns the atom with the given name, or nil if the residue
//does not contain it.
func (r *Residue) Atom(name string) *Atom {
	for _, at := range r.Atoms {
		if at.Name == name {
			return at
		}
	}
	return nil
}

//Letter returns the 1-letter code for the residue type. The second return
//value is false if the residue is not a standard amino acid.
func (r *Residue) Letter() (byte, bool) {
	letter, ok := three2OneLetter[r.Name]
	return letter, ok
}

//IsAminoAcid says whether the residue is a standard amino acid read from an
//ATOM record.
func (r *Residue) IsAminoAcid() bool {
	if r.Het {
		return false
	}
	_, ok := three2OneLetter[r.Name]
	return ok
}

//Chain is one polymer instance of one model.
type Chain struct {
	ID       string
	Residues []*Residue
}

//Model is one of the coordinate sets of a structure. Number is the
//zero-based index of the model within the file.
type Model struct {
	Number int
	Chains []*Chain
}

//Chain returns the chain with the given id, or nil if the model does not
//contain it.
func (m *Model) Chain(id string) *Chain {
	for _, c := range m.Chains {
		if c.ID == id {
			return c
		}
	}
	return nil
}

//Structure is a parsed structure file: an identifier plus one or more
//models. Chains, residues and atoms are owned by the structure; everything
//derived from them borrows and must not outlive it.
type Structure struct {
	ID     string
	Models []*Model
}

//ChainIDs returns the ids of every chain in every model, each id once, in
//first-seen order.
func (s *Structure) ChainIDs() []string {
	var ids []string
	seen := make(map[string]bool)
	for _, m := range s.Models {
		for _, c := range m.Chains {
			if !seen[c.ID] {
				seen[c.ID] = true
				ids = append(ids, c.ID)
			}
		}
	}
	return ids
}

//structureBuilder accumulates atoms in file order and groups them into
//models, chains and residues. A new residue starts whenever the
//(chain, number, insertion code, name) tuple changes.
type structureBuilder struct {
	s       *Structure
	model   *Model
	chain   *Chain
	residue *Residue
}

func newStructureBuilder(id string) *structureBuilder {
	return &structureBuilder{s: &Structure{ID: id}}
}

//startModel opens a new model. Parsers for files without explicit model
//records call it lazily on the first atom.
func (b *structureBuilder) startModel() {
	b.model = &Model{Number: len(b.s.Models)}
	b.s.Models = append(b.s.Models, b.model)
	b.chain = nil
	b.residue = nil
}

func (b *structureBuilder) endModel() {
	b.model = nil
	b.chain = nil
	b.residue = nil
}

//enterModel makes an already started model current again, for formats
//whose rows may resume an earlier model after rows of another one.
func (b *structureBuilder) enterModel(i int) {
	if b.model == b.s.Models[i] {
		return
	}
	b.model = b.s.Models[i]
	b.chain = nil
	b.residue = nil
}

func (b *structureBuilder) addAtom(chainID string, resName string, resNumber int, insertion string, het bool, at *Atom) {
	if b.model == nil {
		b.startModel()
	}
	if b.chain == nil || b.chain.ID != chainID {
		b.chain = b.model.Chain(chainID)
		b.residue = nil
		if b.chain == nil {
			b.chain = &Chain{ID: chainID}
			b.model.Chains = append(b.model.Chains, b.chain)
		}
	}
	if b.residue == nil || b.residue.Name != resName ||
		b.residue.Number != resNumber || b.residue.Insertion != insertion {
		b.residue = nil
		//A re-entered chain may continue its last residue.
		if n := len(b.chain.Residues); n > 0 {
			last := b.chain.Residues[n-1]
			if last.Name == resName && last.Number == resNumber && last.Insertion == insertion {
				b.residue = last
			}
		}
		if b.residue == nil {
			b.residue = &Residue{
				Name:      resName,
				Number:    resNumber,
				Insertion: insertion,
				Het:       het,
			}
			b.chain.Residues = append(b.chain.Residues, b.residue)
		}
	}
	b.residue.Atoms = append(b.residue.Atoms, at)
}

func (b *structureBuilder) structure() (*Structure, error) {
	empty := true
	for _, m := range b.s.Models {
		if len(m.Chains) > 0 {
			empty = false
		}
	}
	if empty {
		return nil, Error{message: NoAtoms, critical: false}
	}
	return b.s, nil
}
