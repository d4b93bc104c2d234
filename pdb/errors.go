package pdb

import "fmt"

//Error is the general structure for structure-reading errors. Critical
//errors abort a run; non-critical ones describe a recognized defect in a
//single file, which the Loader reports as a warning before skipping the
//file.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return err.message
	}
	return fmt.Sprintf("%s: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer receiver, appending
	//works because E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file associated to the error, if any.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error should abort the whole run.
func (err Error) Critical() bool { return err.critical }

//Message returns the bare message constant the error was built from.
func (err Error) Message() string { return err.message }

const (
	BadFormat       = "unsupported structure format"
	DirNotFound     = "structure directory does not exist"
	TruncatedRecord = "truncated atom record"
	BadCoordinate   = "unparseable coordinate field"
	NoAtoms         = "no atom records found"
	BadGzip         = "corrupt gzip stream"
	NoAtomSiteLoop  = "no atom_site loop found"
)
