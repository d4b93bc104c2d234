//Package report writes the results of a run: the coordinate rows as a
//comma-delimited file and, on request, a Ramachandran scatter of the
//matched residues.
package report

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/falategan/motif-conformation-finder/ic"
)

//Fields are the column names of the output file, in order.
var Fields = []string{
	"Protein",
	"Model",
	"Chain",
	"Position",
	"Residue Name",
	"Coordinate Type",
	"Coordinate ID",
	"Coordinate Value",
}

//CSVWriter streams rows to a comma-delimited text file. Field values are
//written as-is, without quoting; they must not contain the delimiter.
//The writer is buffered: rows are not safe on disk until Close returns.
type CSVWriter struct {
	fp     *os.File
	w      *bufio.Writer
	fields []string
}

//NewCSVWriter creates (or truncates) the output file.
func NewCSVWriter(path string, fields []string) (*CSVWriter, error) {
	fp, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &CSVWriter{fp: fp, w: bufio.NewWriter(fp), fields: fields}, nil
}

//WriteHeading writes the column-name row.
func (c *CSVWriter) WriteHeading() error {
	return c.WriteRow(c.fields...)
}

//WriteRow writes one row. The number of values is not checked against the
//number of fields; the caller builds rows from the same list.
func (c *CSVWriter) WriteRow(values ...string) error {
	_, err := fmt.Fprintln(c.w, strings.Join(values, ","))
	return err
}

//WriteRecord writes one row per coordinate of the record, in the order the
//coordinates were resolved.
func (c *CSVWriter) WriteRecord(rec *ic.Record) error {
	for _, coord := range rec.Coordinates {
		err := c.WriteRow(
			rec.Protein,
			strconv.Itoa(rec.Model),
			rec.Chain,
			strconv.Itoa(rec.Position),
			rec.ResidueName,
			coord.Category,
			coord.ID,
			fmt.Sprintf("%f", coord.Value),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

//Close flushes the buffer and closes the file. It must be called after the
//last row on every exit path; skipping it loses buffered rows.
func (c *CSVWriter) Close() error {
	ferr := c.w.Flush()
	cerr := c.fp.Close()
	if ferr != nil {
		return ferr
	}
	return cerr
}
