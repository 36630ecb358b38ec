package fetcher

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/jumbo-cdp/leadqual/internal/model"
)

// LoadXLSX reads a spreadsheet report into a Table. The first row of the
// selected sheet is the header.
func LoadXLSX(path string, opts Options) (model.Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return model.Table{}, eris.Wrap(err, "xlsx: open file")
	}

	sheet, err := getSheet(f, opts.Sheet)
	if err != nil {
		return model.Table{}, err
	}

	var table model.Table
	for i, row := range sheet.Rows {
		cells := rowToStrings(row)
		if i == 0 {
			table.Header = cells
			continue
		}
		table.Rows = append(table.Rows, cells)
	}

	if table.Header == nil {
		return model.Table{}, eris.New("xlsx: sheet has no header row")
	}

	return table, nil
}

func getSheet(f *xlsx.File, name string) (*xlsx.Sheet, error) {
	if name != "" {
		sheet, ok := f.Sheet[name]
		if !ok {
			return nil, eris.Errorf("xlsx: sheet %q not found", name)
		}
		return sheet, nil
	}

	if len(f.Sheets) == 0 {
		return nil, eris.New("xlsx: file has no sheets")
	}

	return f.Sheets[0], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = strings.TrimSpace(cell.String())
	}
	return cells
}
