package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func atomLine(serial int, name, resName string, resSeq int, x, y, z float64) string {
	return fmt.Sprintf("%-6s%5d %-4s %3s %s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s",
		"ATOM", serial, name, resName, "A", resSeq, x, y, z, 1.0, 0.0, name[:1])
}

//tripeptidePDB is an ALA-GLY-SER chain laid head to tail so that every
//consecutive C->N pair is bonded. The serine carries its sidechain up to
//OG, so chi1 resolves for it.
func tripeptidePDB() string {
	lines := []string{
		atomLine(1, "N", "ALA", 1, 0.0, 0.0, 0.0),
		atomLine(2, "CA", "ALA", 1, 1.0, 0.6, 0.0),
		atomLine(3, "C", "ALA", 1, 2.0, 0.0, 0.0),
		atomLine(4, "O", "ALA", 1, 2.0, -0.7, 0.9),
		atomLine(5, "CB", "ALA", 1, 1.0, 1.2, 1.2),
		atomLine(6, "N", "GLY", 2, 3.0, 0.0, 0.0),
		atomLine(7, "CA", "GLY", 2, 4.0, 0.6, 0.0),
		atomLine(8, "C", "GLY", 2, 5.0, 0.0, 0.0),
		atomLine(9, "O", "GLY", 2, 5.0, -0.7, 0.9),
		atomLine(10, "N", "SER", 3, 6.0, 0.0, 0.0),
		atomLine(11, "CA", "SER", 3, 7.0, 0.6, 0.0),
		atomLine(12, "C", "SER", 3, 8.0, 0.0, 0.0),
		atomLine(13, "O", "SER", 3, 8.0, -0.7, 0.9),
		atomLine(14, "CB", "SER", 3, 7.0, 1.2, 1.2),
		atomLine(15, "OG", "SER", 3, 7.0, 1.2, 2.6),
		"END",
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "1xyz.pdb"), []byte(tripeptidePDB()), 0644); err != nil {
		t.Fatal(err)
	}
	outFile := filepath.Join(dir, "out.csv")
	if err := run("GS", "", dir, "pdb", false, outFile, ""); err != nil {
		t.Fatal(err)
	}
	text, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(text), "\n"), "\n")
	if lines[0] != "Protein,Model,Chain,Position,Residue Name,Coordinate Type,Coordinate ID,Coordinate Value" {
		t.Fatal("bad header:", lines[0])
	}
	dihedrals := map[int]map[string]bool{2: {}, 3: {}}
	categories := map[int][]string{}
	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) != 8 {
			t.Fatal("bad row:", line)
		}
		if fields[0] != "1xyz" || fields[1] != "0" || fields[2] != "A" {
			t.Error("bad row identity:", line)
		}
		pos := 0
		fmt.Sscanf(fields[3], "%d", &pos)
		if pos != 2 && pos != 3 {
			t.Fatal("only residues 2 and 3 match the motif, got row", line)
		}
		if fields[5] == "dihedral_angle" {
			dihedrals[pos][fields[6]] = true
		}
		categories[pos] = append(categories[pos], fields[5])
	}
	//rows of the first matched residue come before those of the second
	firstOfThree := -1
	for i, line := range lines[1:] {
		if strings.HasPrefix(line, "1xyz,0,A,3,") {
			firstOfThree = i
			break
		}
	}
	if firstOfThree < 0 {
		t.Fatal("no rows for the serine")
	}
	for _, line := range lines[1+firstOfThree:] {
		if strings.HasPrefix(line, "1xyz,0,A,2,") {
			t.Fatal("glycine row after a serine row:", line)
		}
	}
	//the glycine sits mid-chain, the serine at the C-terminus
	for _, name := range []string{"phi", "psi", "omega"} {
		if !dihedrals[2][name] {
			t.Error("glycine is missing", name)
		}
	}
	if dihedrals[3]["psi"] {
		t.Error("the last residue of the run must have no psi")
	}
	if !dihedrals[3]["phi"] || !dihedrals[3]["omega"] || !dihedrals[3]["chi1"] {
		t.Error("serine dihedrals incomplete:", dihedrals[3])
	}
	//per residue, bond angles precede dihedrals precede bond lengths
	rank := map[string]int{"bond_angle": 0, "dihedral_angle": 1, "bond_length": 2}
	for pos, cats := range categories {
		last := 0
		for _, cat := range cats {
			if rank[cat] < last {
				t.Error("residue", pos, "category order broken at", cat)
			}
			last = rank[cat]
		}
	}
}

func TestRunIdempotent(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "1xyz.pdb"), []byte(tripeptidePDB()), 0644); err != nil {
		t.Fatal(err)
	}
	//outputs go elsewhere so the second scan sees the same directory
	outDir := t.TempDir()
	first := filepath.Join(outDir, "first.csv")
	second := filepath.Join(outDir, "second.csv")
	if err := run("GS", "", dir, "pdb", false, first, ""); err != nil {
		t.Fatal(err)
	}
	if err := run("GS", "", dir, "pdb", false, second, ""); err != nil {
		t.Fatal(err)
	}
	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("two runs over identical input must produce identical output")
	}
}
