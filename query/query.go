//Package query decides which chains of which structure files a run will
//examine, either from an explicit list file or by scanning a directory.
package query

import (
	"fmt"
	"strings"
)

//Query names one structure file and the chains to examine in it.
type Query struct {
	ProteinID string
	Path      string
	ChainIDs  []string
}

//HasChain says whether the chain id is already listed for this query.
func (q *Query) HasChain(id string) bool {
	for _, c := range q.ChainIDs {
		if c == id {
			return true
		}
	}
	return false
}

//AddChain appends a chain id, ignoring duplicates.
func (q *Query) AddChain(id string) {
	if !q.HasChain(id) {
		q.ChainIDs = append(q.ChainIDs, id)
	}
}

//Queries is an ordered collection of queries with at most one entry per
//protein id.
type Queries struct {
	list []*Query
}

//Add records a (protein, file, chain) triple. It either creates a new query
//or appends the chain id to the existing query for that protein; duplicate
//chain ids are ignored.
func (qs *Queries) Add(proteinID, path, chainID string) {
	if q := qs.Get(proteinID); q != nil {
		q.AddChain(chainID)
		return
	}
	qs.list = append(qs.list, &Query{
		ProteinID: proteinID,
		Path:      path,
		ChainIDs:  []string{chainID},
	})
}

//Get returns the query for the given protein id, or nil.
func (qs *Queries) Get(proteinID string) *Query {
	for _, q := range qs.list {
		if q.ProteinID == proteinID {
			return q
		}
	}
	return nil
}

//Contains says whether a query exists for the given protein id.
func (qs *Queries) Contains(proteinID string) bool {
	return qs.Get(proteinID) != nil
}

//List returns the queries in insertion order.
func (qs *Queries) List() []*Query { return qs.list }

//Len returns the number of queries.
func (qs *Queries) Len() int { return len(qs.list) }

//Error is the type for query-resolution errors. All of them are critical:
//if the run cannot decide what to process, it cannot proceed.
type Error struct {
	message string
	path    string
	deco    []string
}

func (err Error) Error() string {
	return fmt.Sprintf("%s: %s", err.path, err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Path returns the offending path.
func (err Error) Path() string { return err.path }

//Critical returns true; query errors always abort the run.
func (err Error) Critical() bool { return true }

//Message returns the bare message constant the error was built from.
func (err Error) Message() string { return err.message }

const (
	DirNotFound  = "structure directory does not exist"
	ListNotFound = "query list file not found"
	BadRow       = "query list row does not have 3 fields"
)

//proteinIDFromFile derives a protein id from a structure file name: the
//part before the first '.', or the whole name if there is none.
func proteinIDFromFile(name string) string {
	id, _, _ := strings.Cut(name, ".")
	return id
}
