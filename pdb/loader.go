package pdb

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

//Loader parses structure files from one directory, in one format, reporting
//per-file defects as warnings instead of failing the run.
type Loader struct {
	dir     string
	gzipped bool
	parse   func(io.Reader, string) (*Structure, error)
}

//NewLoader returns a loader for the given directory. format must be "pdb"
//for the legacy fixed-column format or "cif" for mmCIF; anything else is a
//critical error.
func NewLoader(dir, format string, gzipped bool) (*Loader, error) {
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return nil, Error{message: DirNotFound, filename: dir, critical: true}
	}
	l := &Loader{dir: dir, gzipped: gzipped}
	switch format {
	case "pdb":
		l.parse = ReadPDB
	case "cif":
		l.parse = ReadMmcif
	default:
		return nil, Error{message: BadFormat, filename: format, critical: true}
	}
	return l, nil
}

//Dir returns the directory the loader reads from.
func (l *Loader) Dir() string { return l.dir }

//Load parses one structure file from the loader's directory. A missing file
//or a recognized parse failure is reported on standard error and yields a
//nil structure with a nil error; the run goes on. Any other I/O error is
//returned.
func (l *Loader) Load(proteinID, fileName string) (*Structure, error) {
	path := filepath.Join(l.dir, fileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("warning: the structure file %s does not exist", path)
		return nil, nil
	}
	fp, err := openText(path, l.gzipped)
	if err != nil {
		var perr Error
		if errors.As(err, &perr) && !perr.Critical() {
			log.Printf("warning: encountered error %q while reading file %s", perr.Message(), path)
			return nil, nil
		}
		return nil, err
	}
	defer fp.Close()
	s, err := l.parse(fp, proteinID)
	if err != nil {
		var perr Error
		if errors.As(err, &perr) && !perr.Critical() {
			log.Printf("warning: encountered error %q while parsing file %s", perr.Message(), path)
			return nil, nil
		}
		//A stream truncated or corrupted inside the compressed data is a
		//defect of this one file, like a bad header.
		if errors.Is(err, gzip.ErrChecksum) || errors.Is(err, gzip.ErrHeader) ||
			errors.Is(err, io.ErrUnexpectedEOF) {
			log.Printf("warning: encountered error %q while parsing file %s", err, path)
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}
