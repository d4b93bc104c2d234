package pdb

import (
	"strings"
	"testing"
)

const smallCif = `data_1XYZ
#
_entry.id 1XYZ
#
loop_
_atom_site.group_PDB
_atom_site.id
_atom_site.type_symbol
_atom_site.label_atom_id
_atom_site.label_comp_id
_atom_site.label_asym_id
_atom_site.label_seq_id
_atom_site.pdbx_PDB_ins_code
_atom_site.Cartn_x
_atom_site.Cartn_y
_atom_site.Cartn_z
_atom_site.occupancy
_atom_site.B_iso_or_equiv
_atom_site.auth_seq_id
_atom_site.auth_asym_id
_atom_site.pdbx_PDB_model_num
ATOM   1 N N   ALA A 1 ? 0.000 0.000 0.000 1.00 10.00 1 A 1
ATOM   2 C CA  ALA A 1 ? 1.000 0.600 0.000 1.00 10.00 1 A 1
ATOM   3 C C   ALA A 1 ? 2.000 0.000 0.000 1.00 10.00 1 A 1
ATOM   4 O "O" ALA A 1 ? 2.000 -0.700 0.900 1.00 10.00 1 A 1
HETATM 5 O O   HOH B 1 ? 9.000 9.000 9.000 1.00 10.00 201 B 1
#
`

func TestReadMmcif(t *testing.T) {
	s, err := ReadMmcif(strings.NewReader(smallCif), "1xyz")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Models) != 1 || s.Models[0].Number != 0 {
		t.Fatal("expected a single model numbered 0")
	}
	chain := s.Models[0].Chain("A")
	if chain == nil {
		t.Fatal("chain A not found")
	}
	if len(chain.Residues) != 1 {
		t.Fatal("expected 1 residue in chain A, got", len(chain.Residues))
	}
	ala := chain.Residues[0]
	if ala.Name != "ALA" || ala.Number != 1 {
		t.Error("bad residue", ala)
	}
	if len(ala.Atoms) != 4 {
		t.Error("expected 4 atoms, got", len(ala.Atoms))
	}
	//the quoted atom name must come out unquoted
	if ala.Atom("O") == nil {
		t.Error("quoted O atom not parsed")
	}
	ca := ala.Atom("CA")
	if ca == nil || ca.X != 1.0 || ca.Y != 0.6 {
		t.Error("bad CA", ca)
	}
	water := s.Models[0].Chain("B")
	if water == nil || !water.Residues[0].Het || water.Residues[0].Number != 201 {
		t.Error("het row should land in chain B at auth position 201")
	}
}

func TestReadMmcifInterleavedModels(t *testing.T) {
	cif := `data_2XYZ
loop_
_atom_site.group_PDB
_atom_site.id
_atom_site.label_atom_id
_atom_site.label_comp_id
_atom_site.label_asym_id
_atom_site.auth_seq_id
_atom_site.Cartn_x
_atom_site.Cartn_y
_atom_site.Cartn_z
_atom_site.pdbx_PDB_model_num
ATOM 1 N  ALA A 1 0.0 0.0 0.0 1
ATOM 2 CA ALA A 1 1.0 0.6 0.0 1
ATOM 3 N  ALA A 1 0.1 0.0 0.0 2
ATOM 4 C  ALA A 1 2.0 0.0 0.0 1
#
`
	s, err := ReadMmcif(strings.NewReader(cif), "2xyz")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Models) != 2 {
		t.Fatal("expected 2 models, got", len(s.Models))
	}
	//the last row resumes model 1 and its residue, not model 2
	first := s.Models[0].Chain("A")
	if first == nil || len(first.Residues) != 1 {
		t.Fatal("expected a single residue in model 0 chain A")
	}
	if len(first.Residues[0].Atoms) != 3 || first.Residues[0].Atom("C") == nil {
		t.Error("the resumed row must land in model 0, got atoms",
			len(first.Residues[0].Atoms))
	}
	second := s.Models[1].Chain("A")
	if second == nil || len(second.Residues) != 1 || len(second.Residues[0].Atoms) != 1 {
		t.Error("model 1 must hold only its own row")
	}
}

func TestReadMmcifNoLoop(t *testing.T) {
	_, err := ReadMmcif(strings.NewReader("data_x\n_entry.id x\n"), "x")
	perr, ok := err.(Error)
	if !ok || perr.Message() != NoAtomSiteLoop {
		t.Error("expected a no-atom-site-loop error, got", err)
	}
}

func TestSplitQuoted(t *testing.T) {
	fields := splitQuoted(`ATOM 1 "C1'" 'N A' plain`)
	want := []string{"ATOM", "1", "C1'", "N A", "plain"}
	if len(fields) != len(want) {
		t.Fatal("got", fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Error("field", i, "=", fields[i], "want", want[i])
		}
	}
}
