package query

import (
	"errors"
	"log"
	"os"

	"github.com/falategan/motif-conformation-finder/pdb"
)

//FromDirectory builds a Queries collection by scanning the loader's
//directory: every regular file is parsed and every chain id found in the
//structure, in any model, becomes a chain query. A file that cannot be
//read or parsed is reported as a warning and skipped; only a missing
//directory or a critical loader error aborts the scan.
func FromDirectory(loader *pdb.Loader) (*Queries, error) {
	dir := loader.Dir()
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return nil, Error{message: DirNotFound, path: dir}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		//os.ReadDir returns the entries it could read before the error.
		log.Printf("warning: encountered error %q while listing directory %s", err, dir)
	}
	qs := new(Queries)
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		proteinID := proteinIDFromFile(name)
		s, err := loader.Load(proteinID, name)
		if err != nil {
			//Only configuration-level defects abort the scan; an I/O or
			//parse error on one file loses that file, not the run.
			var perr pdb.Error
			if errors.As(err, &perr) && perr.Critical() {
				return nil, err
			}
			log.Printf("warning: encountered error %q while reading file %s", err, name)
			continue
		}
		if s == nil {
			continue
		}
		for _, chainID := range s.ChainIDs() {
			qs.Add(proteinID, name, chainID)
		}
	}
	return qs, nil
}
