package fetcher

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/jumbo-cdp/leadqual/internal/model"
)

// LoadCSV reads a delimited text report into a Table.
func LoadCSV(path string, opts Options) (model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Table{}, eris.Wrap(err, "csv: open file")
	}
	defer f.Close()

	return ReadCSV(f, opts)
}

// ReadCSV parses a delimited text report from a reader. The first record is
// the header; field counts may vary per row (short rows are padded by callers
// via column lookup, never rejected here).
func ReadCSV(r io.Reader, opts Options) (model.Table, error) {
	decoded, err := decodeReader(r, opts.Encoding)
	if err != nil {
		return model.Table{}, err
	}

	reader := csv.NewReader(decoded)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // allow variable fields

	var table model.Table
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.Table{}, eris.Wrap(err, "csv: read row")
		}

		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}

		if first {
			first = false
			table.Header = record
			continue
		}
		table.Rows = append(table.Rows, record)
	}

	if table.Header == nil {
		return model.Table{}, eris.New("csv: file has no header row")
	}

	return table, nil
}

// decodeReader wraps r with a charset decoder when a legacy encoding is
// configured. Brazilian ERP exports are frequently windows-1252.
func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	if encoding == "" {
		return r, nil
	}
	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return nil, eris.Wrapf(err, "csv: unsupported charset %q", encoding)
	}
	return enc.NewDecoder().Reader(r), nil
}
