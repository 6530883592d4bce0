package table

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// ReadXLSX loads the first sheet of a spreadsheet into a table. The first
// row is the header; trailing cells missing from short rows become null.
func ReadXLSX(path string) (*Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "table: open xlsx %s", path)
	}
	if len(f.Sheets) == 0 {
		return nil, eris.Errorf("table: xlsx %s has no sheets", path)
	}
	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, eris.Errorf("table: xlsx %s has no header row", path)
	}

	header := rowStrings(sheet.Rows[0], 0)
	for i, col := range header {
		header[i] = strings.TrimSpace(col)
	}

	t := New(header...)
	for _, row := range sheet.Rows[1:] {
		t.Append(cellsOf(rowStrings(row, len(header))))
	}
	return t, nil
}

// rowStrings converts a sheet row to string fields. When width > 0 the
// result is padded or truncated to exactly width fields.
func rowStrings(row *xlsx.Row, width int) []string {
	n := len(row.Cells)
	if width > 0 {
		n = width
	}
	fields := make([]string, n)
	for j, cell := range row.Cells {
		if j >= n {
			break
		}
		fields[j] = cell.String()
	}
	return fields
}
