package query

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//ListHeading is the header row written by WriteList and discarded by
//ReadList when hasHeader is set.
const ListHeading = "protein_id,file_path,chain_id"

//ReadList reads a 3-column comma-delimited file of
//(protein_id, file_path, chain_id) rows and merges it into a Queries
//collection. When hasHeader is set, the first row is discarded. A missing
//file is a critical error.
func ReadList(path string, hasHeader bool) (*Queries, error) {
	fp, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Error{message: ListNotFound, path: path}
		}
		return nil, err
	}
	defer fp.Close()
	qs, err := readList(fp, hasHeader)
	if err != nil {
		if qerr, ok := err.(Error); ok {
			qerr.path = path
			return nil, qerr
		}
		return nil, err
	}
	return qs, nil
}

func readList(r io.Reader, hasHeader bool) (*Queries, error) {
	discard := hasHeader
	qs := new(Queries)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if discard {
			discard = false
			continue
		}
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, Error{message: BadRow}
		}
		qs.Add(fields[0], fields[1], fields[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return qs, nil
}

//WriteList writes the collection in the list-file format ReadList reads:
//a header row, then one row per (protein, chain) pair, chains in
//first-seen order.
func (qs *Queries) WriteList(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, ListHeading)
	for _, q := range qs.list {
		for _, chain := range q.ChainIDs {
			fmt.Fprintf(bw, "%s,%s,%s\n", q.ProteinID, q.Path, chain)
		}
	}
	return bw.Flush()
}
