package table

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// ReadCSV loads a delimited file into a table. The first record is the
// header; cells are read as strings, with empty cells becoming null.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "table: open csv %s", path)
	}
	defer f.Close()

	t, err := readCSV(f)
	if err != nil {
		return nil, eris.Wrapf(err, "table: read csv %s", path)
	}
	return t, nil
}

func readCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, eris.New("csv has no header row")
	}
	if err != nil {
		return nil, err
	}
	for i, col := range header {
		header[i] = strings.TrimSpace(col)
	}

	t := New(header...)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return nil, err
		}
		t.Append(cellsOf(record))
	}
}

// WriteCSV writes the table as a delimited file with a header row.
func WriteCSV(t *Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "table: create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(t.Columns()); err != nil {
		return eris.Wrap(err, "table: write header")
	}
	record := make([]string, len(t.Columns()))
	for i := 0; i < t.Len(); i++ {
		for j, v := range t.Row(i) {
			record[j] = v.Render()
		}
		if err := w.Write(record); err != nil {
			return eris.Wrap(err, "table: write row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "table: flush")
	}
	return nil
}

// cellsOf converts raw string fields to cells, mapping empty to null.
func cellsOf(record []string) []Value {
	row := make([]Value, len(record))
	for i, field := range record {
		field = strings.TrimSpace(field)
		if field == "" {
			row[i] = Null()
			continue
		}
		row[i] = Str(field)
	}
	return row
}
