package pipeline

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"

	"github.com/jumbo-cdp/leadqual/internal/model"
)

// Derived export columns appended after the input columns.
const (
	colFormattedName = "Cliente_Formatado"
	colMessage       = "Mensagem_Personalizada"
	colWhatsApp      = "WhatsApp"
)

// Export writes the qualified lead list as delimited text, UTF-8, one row per
// lead. Column order mirrors the input header followed by the derived
// columns. When the order-value column is present, its raw text survives
// under "<name>_Original" and the formatted display column takes the original
// name, inserted immediately after.
func (p *Pipeline) Export(w io.Writer, result *model.RunResult) error {
	cw := csv.NewWriter(w)
	if d := []rune(p.cfg.Export.Delimiter); len(d) > 0 {
		cw.Comma = d[0]
	}

	valueIdx := indexOf(result.Header, p.cfg.Columns.OrderValue)

	header := make([]string, 0, len(result.Header)+4)
	for i, col := range result.Header {
		if i == valueIdx {
			header = append(header, col+"_Original", col)
			continue
		}
		header = append(header, col)
	}
	header = append(header, colFormattedName, colMessage, colWhatsApp)

	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "export: write header")
	}

	for _, lead := range result.Leads {
		row := make([]string, 0, len(header))
		for i := range result.Header {
			raw := cell(lead.Raw, i)
			if i == valueIdx {
				row = append(row, raw, lead.OrderValueDisplay)
				continue
			}
			row = append(row, raw)
		}
		row = append(row,
			lead.DisplayFirstName,
			lead.MessageBody,
			WebLink(lead.Phone, lead.MessageBody),
		)
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "export: flush")
	}
	return nil
}

// ExportFile writes the lead list export to a file.
func (p *Pipeline) ExportFile(path string, result *model.RunResult) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "export: create file")
	}
	defer f.Close()

	return p.Export(f, result)
}

func indexOf(header []string, name string) int {
	if name == "" {
		return -1
	}
	for i, col := range header {
		if col == name {
			return i
		}
	}
	return -1
}
