package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/addrqa/report-compare/internal/table"
)

// MissingFileError reports a required source file or output directory that
// does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("report: required file not found: %s", e.Path)
}

// LoadReport reads one report file into a table. CSV is the default;
// .xlsx files are read as spreadsheets. A nonexistent path is a
// MissingFileError.
func LoadReport(path string) (*table.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, eris.Wrapf(err, "report: stat %s", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return table.ReadXLSX(path)
	}
	return table.ReadCSV(path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
