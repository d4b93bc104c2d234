package pdb

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

//ReadMmcif parses a structure in mmCIF format. Only the _atom_site loop is
//read; every other data block is skipped. Chains are identified by
//label_asym_id. Models are numbered by the zero-based first-seen order of
//their pdbx_PDB_model_num values, so single-model files get model 0
//whatever the deposited model number is.
func ReadMmcif(r io.Reader, id string) (*Structure, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*64), 1024*1024)
	cols, firstRow, err := findAtomSiteLoop(scanner, id)
	if err != nil {
		return nil, err
	}
	b := newStructureBuilder(id)
	modelIndex := make(map[string]int)
	line := firstRow
	for {
		if err := readAtomSiteRow(b, cols, line, modelIndex, id); err != nil {
			return nil, err
		}
		if !scanner.Scan() {
			break
		}
		line = strings.TrimSpace(scanner.Text())
		if line == "" || line == "#" || line == "loop_" ||
			strings.HasPrefix(line, "_") || strings.HasPrefix(line, "data_") {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.structure()
}

//findAtomSiteLoop advances the scanner to the first data row of the
//_atom_site loop and returns the column index for each _atom_site tag,
//together with that first row.
func findAtomSiteLoop(scanner *bufio.Scanner, id string) (map[string]int, string, error) {
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "loop_" {
			continue
		}
		cols := make(map[string]int)
		n := 0
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if strings.HasPrefix(line, "_atom_site.") {
				cols[strings.TrimPrefix(line, "_atom_site.")] = n
				n++
				continue
			}
			if strings.HasPrefix(line, "_") {
				//a different loop; look for the next loop_ keyword
				break
			}
			if n > 0 && line != "" && line != "#" {
				return cols, line, nil //first data row
			}
			if line == "loop_" || line == "" || line == "#" {
				break
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, "", err
	}
	return nil, "", Error{message: NoAtomSiteLoop, filename: id}
}

func readAtomSiteRow(b *structureBuilder, cols map[string]int, line string, modelIndex map[string]int, id string) error {
	fields := splitQuoted(line)
	get := func(tag string) string {
		i, ok := cols[tag]
		if !ok || i >= len(fields) {
			return ""
		}
		v := fields[i]
		if v == "." || v == "?" {
			return ""
		}
		return v
	}
	if len(fields) < len(cols) {
		return Error{message: TruncatedRecord, filename: id}
	}
	if alt := get("label_alt_id"); alt != "" && alt != "A" {
		return nil
	}
	model := get("pdbx_PDB_model_num")
	if i, ok := modelIndex[model]; ok {
		//rows may resume a model seen earlier in the loop
		b.enterModel(i)
	} else {
		modelIndex[model] = len(modelIndex)
		b.startModel()
	}
	x, errx := strconv.ParseFloat(get("Cartn_x"), 64)
	y, erry := strconv.ParseFloat(get("Cartn_y"), 64)
	z, errz := strconv.ParseFloat(get("Cartn_z"), 64)
	if errx != nil || erry != nil || errz != nil {
		return Error{message: BadCoordinate, filename: id}
	}
	chainID := get("label_asym_id")
	if chainID == "" {
		chainID = get("auth_asym_id")
	}
	seq := get("auth_seq_id")
	if seq == "" {
		seq = get("label_seq_id")
	}
	resNumber, err := strconv.Atoi(seq)
	if err != nil {
		return Error{message: TruncatedRecord, filename: id}
	}
	serial, _ := strconv.Atoi(get("id"))
	at := &Atom{
		Name:    get("label_atom_id"),
		Number:  serial,
		X:       x,
		Y:       y,
		Z:       z,
		Element: get("type_symbol"),
	}
	if occ := get("occupancy"); occ != "" {
		at.Occupancy, _ = strconv.ParseFloat(occ, 64)
	}
	if bf := get("B_iso_or_equiv"); bf != "" {
		at.BFactor, _ = strconv.ParseFloat(bf, 64)
	}
	het := get("group_PDB") == "HETATM"
	b.addAtom(chainID, get("label_comp_id"), resNumber, get("pdbx_PDB_ins_code"), het, at)
	return nil
}

//splitQuoted splits an mmCIF data row into fields. Fields are separated by
//blanks; a field starting with a single or double quote runs to the
//matching quote. Atom names like "C1'" arrive quoted in deposited files.
func splitQuoted(line string) []string {
	var fields []string
	i := 0
	for i < len(line) {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) {
			break
		}
		if line[i] == '\'' || line[i] == '"' {
			quote := line[i]
			j := i + 1
			for j < len(line) && line[j] != quote {
				j++
			}
			fields = append(fields, line[i+1:j])
			i = j + 1
			continue
		}
		j := i
		for j < len(line) && line[j] != ' ' && line[j] != '\t' {
			j++
		}
		fields = append(fields, line[i:j])
		i = j
	}
	return fields
}
