// Package fetcher loads tabular sales reports from CSV and XLSX files.
package fetcher

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/jumbo-cdp/leadqual/internal/model"
)

// Options configures report loading. The zero value reads a
// comma-delimited UTF-8 CSV or the first sheet of an XLSX file.
type Options struct {
	Delimiter rune   // CSV field delimiter (default ',')
	Encoding  string // IANA charset name for legacy CSV exports ("" = UTF-8)
	Sheet     string // XLSX sheet name ("" = first sheet)
}

// LoadTable reads a report file into a Table, dispatching on extension.
// The first row is treated as the header.
func LoadTable(path string, opts Options) (model.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return LoadCSV(path, opts)
	case ".xlsx":
		return LoadXLSX(path, opts)
	default:
		return model.Table{}, eris.Errorf("fetcher: unsupported file type %q", filepath.Ext(path))
	}
}
