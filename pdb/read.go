package pdb

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

//ReadPDB parses a structure in the legacy fixed-column PDB format.
//Column positions follow the wwPDB format description for ATOM records.
//Alternate locations other than ' ' and 'A' are dropped. A file without a
//MODEL record yields a single model numbered 0.
func ReadPDB(r io.Reader, id string) (*Structure, error) {
	b := newStructureBuilder(id)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		record := line
		if len(record) > 6 {
			record = record[:6]
		}
		switch strings.TrimSpace(record) {
		case "MODEL":
			b.startModel()
		case "ENDMDL":
			b.endModel()
		case "ATOM", "HETATM":
			if err := readAtomLine(b, line, id); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.structure()
}

func readAtomLine(b *structureBuilder, line, id string) error {
	if len(line) < 54 {
		return Error{message: TruncatedRecord, filename: id}
	}
	altLoc := line[16]
	if altLoc != ' ' && altLoc != 'A' {
		return nil
	}
	serial, _ := strconv.Atoi(strings.TrimSpace(line[6:11]))
	name := strings.TrimSpace(line[12:16])
	resName := strings.TrimSpace(line[17:20])
	chainID := line[21:22]
	resSeq, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return Error{message: TruncatedRecord, filename: id}
	}
	insertion := strings.TrimSpace(line[26:27])
	x, errx := strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	y, erry := strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	z, errz := strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	if errx != nil || erry != nil || errz != nil {
		return Error{message: BadCoordinate, filename: id}
	}
	at := &Atom{Name: name, Number: serial, X: x, Y: y, Z: z}
	//Occupancy, B-factor and element are optional in practice.
	if len(line) >= 60 {
		at.Occupancy, _ = strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64)
	}
	if len(line) >= 66 {
		at.BFactor, _ = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	}
	if len(line) >= 78 {
		at.Element = strings.TrimSpace(line[76:78])
	}
	het := strings.HasPrefix(line, "HETATM")
	b.addAtom(chainID, resName, resSeq, insertion, het, at)
	return nil
}
