// motifconf finds every instance of an amino-acid sequence motif in a set
// of protein structures and writes the internal coordinates (bond lengths,
// bond angles, dihedral angles) of each matched residue to a csv file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/falategan/motif-conformation-finder/ic"
	"github.com/falategan/motif-conformation-finder/motif"
	"github.com/falategan/motif-conformation-finder/pdb"
	"github.com/falategan/motif-conformation-finder/query"
	"github.com/falategan/motif-conformation-finder/report"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

//query list files carry a column-name row
const hasHeader = true

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]),
		"[options] motif structure_directory pdb|cif output_file")
	long := `motif is the amino acid sequence to find, in 1-letter codes.
structure_directory holds the protein structure files; without -q every file
in it is searched and all chains are discovered automatically.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var queryList, ramaFile string
	var gzipped bool
	flag.StringVar(&queryList, "q", "", "csv file listing protein_id,file_path,chain_id to search")
	flag.StringVar(&queryList, "query_list", "", "long form of -q")
	flag.BoolVar(&gzipped, "g", false, "structure files are compressed with gzip")
	flag.BoolVar(&gzipped, "gzipped", false, "long form of -g")
	flag.StringVar(&ramaFile, "r", "", "also write a Ramachandran scatter of the matches to this png file")
	flag.Usage = usage
	flag.Parse()
	log.SetFlags(0)

	if flag.NArg() != 4 {
		fmt.Fprintln(os.Stderr, "expected 4 arguments, got", flag.NArg())
		usage()
		os.Exit(ExitFailure)
	}
	motifSeq := flag.Arg(0)
	if motifSeq == "" {
		fmt.Fprintln(os.Stderr, "the motif must not be empty")
		os.Exit(ExitFailure)
	}
	err := run(motifSeq, queryList, flag.Arg(1), flag.Arg(2), gzipped, flag.Arg(3), ramaFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}

//run wires the pipeline: resolve queries, then pull structures, segments,
//matches and coordinates one at a time, streaming rows to the output file.
func run(motifSeq, queryList, dir, format string, gzipped bool, outFile, ramaFile string) error {
	table := ic.NewTable()
	loader, err := pdb.NewLoader(dir, format, gzipped)
	if err != nil {
		return err
	}
	var queries *query.Queries
	if queryList != "" {
		queries, err = query.ReadList(queryList, hasHeader)
	} else {
		queries, err = query.FromDirectory(loader)
	}
	if err != nil {
		return err
	}
	var rama *report.RamaPlot
	if ramaFile != "" {
		rama = new(report.RamaPlot)
	}
	out, err := report.NewCSVWriter(outFile, report.Fields)
	if err != nil {
		return err
	}
	if err := writeCoordinates(out, rama, table, loader, queries, motifSeq); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	if rama != nil {
		return rama.Save("Motif "+motifSeq, ramaFile)
	}
	return nil
}

func writeCoordinates(out *report.CSVWriter, rama *report.RamaPlot, table *ic.Table,
	loader *pdb.Loader, queries *query.Queries, motifSeq string) error {
	if err := out.WriteHeading(); err != nil {
		return err
	}
	for _, q := range queries.List() {
		s, err := loader.Load(q.ProteinID, q.Path)
		if err != nil {
			return err
		}
		if s == nil {
			continue
		}
		for _, seg := range motif.Segments(s, q.ChainIDs) {
			matcher, err := motif.NewMatcher(seg, motifSeq)
			if err != nil {
				return err
			}
			for {
				match, ok := matcher.Next()
				if !ok {
					break
				}
				for k, res := range match.Residues {
					letter, ok := res.Letter()
					if !ok {
						continue
					}
					geometry := table.Geometry(seg.Residues, match.Start+k)
					rec := &ic.Record{
						Protein:     seg.ProteinID,
						Model:       seg.ModelNumber,
						Chain:       seg.ChainID,
						Position:    res.Number,
						ResidueName: res.Name,
						Coordinates: table.Coordinates(letter, geometry),
					}
					if err := out.WriteRecord(rec); err != nil {
						return err
					}
					if rama != nil {
						collectRama(rama, rec.Coordinates)
					}
				}
			}
		}
	}
	return nil
}

//collectRama adds the residue's phi/psi pair to the scatter if both
//torsions resolved.
func collectRama(rama *report.RamaPlot, coords []ic.Coordinate) {
	var phi, psi float64
	var hasPhi, hasPsi bool
	for _, c := range coords {
		if c.Category != ic.DihedralAngle {
			continue
		}
		switch c.ID {
		case "phi":
			phi, hasPhi = c.Value, true
		case "psi":
			psi, hasPsi = c.Value, true
		}
	}
	if hasPhi && hasPsi {
		rama.Add(phi, psi)
	}
}
