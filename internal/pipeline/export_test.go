package pipeline

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jumbo-cdp/leadqual/internal/model"
)

func exportFixture(t *testing.T) (*Pipeline, *model.RunResult) {
	t.Helper()
	cfg := testConfig()
	header := append(testHeader(), "Numero Pedido", "Valor Pedido")
	table := model.Table{
		Header: header,
		Rows: [][]string{
			{"1", "maria silva", "(11) 91234-5678", "0", "Pedido salvo", "P-100", "R$ 1.234,50"},
			{"2", "joão pedro", "(21) 99876-5432", "0", "Pedido salvo", "P-101", "n/a"},
		},
	}
	p := New(cfg)
	result, err := p.Qualify(table)
	require.NoError(t, err)
	require.Len(t, result.Leads, 2)
	return p, result
}

func TestExport_HeaderWithValueColumnSplit(t *testing.T) {
	p, result := exportFixture(t)

	var buf bytes.Buffer
	require.NoError(t, p.Export(&buf, result))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"Codigo Cliente", "Cliente", "Fone Fixo", "Quant. Pedidos Enviados", "Status",
		"Numero Pedido", "Valor Pedido_Original", "Valor Pedido",
		"Cliente_Formatado", "Mensagem_Personalizada", "WhatsApp",
	}, records[0])

	row := records[1]
	assert.Equal(t, "R$ 1.234,50", row[6]) // raw text retained
	assert.Equal(t, "R$ 1.234,50", row[7]) // formatted display
	assert.Equal(t, "Maria", row[8])
	assert.Equal(t, "Olá Maria!", row[9])
	assert.True(t, strings.HasPrefix(row[10], "https://wa.me/11912345678?text="))

	// Unparsable monetary text exports unchanged in both columns.
	assert.Equal(t, "n/a", records[2][6])
	assert.Equal(t, "n/a", records[2][7])
}

func TestExport_NoValueColumn(t *testing.T) {
	p := New(testConfig())
	table := model.Table{
		Header: testHeader(),
		Rows: [][]string{
			{"1", "maria silva", "(11) 91234-5678", "0", "Pedido salvo"},
		},
	}
	result, err := p.Qualify(table)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Export(&buf, result))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Codigo Cliente", "Cliente", "Fone Fixo", "Quant. Pedidos Enviados", "Status",
		"Cliente_Formatado", "Mensagem_Personalizada", "WhatsApp",
	}, records[0])
	require.Len(t, records, 2)
	assert.Equal(t, "1", records[1][0])
}

func TestExport_SemicolonDelimiter(t *testing.T) {
	cfg := testConfig()
	cfg.Export.Delimiter = ";"
	p := New(cfg)
	table := model.Table{
		Header: testHeader(),
		Rows: [][]string{
			{"1", "maria silva", "(11) 91234-5678", "0", "Pedido salvo"},
		},
	}
	result, err := p.Qualify(table)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Export(&buf, result))

	reader := csv.NewReader(&buf)
	reader.Comma = ';'
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Codigo Cliente", records[0][0])
}

func TestExport_EmptyLeadList(t *testing.T) {
	p := New(testConfig())
	table := model.Table{Header: testHeader()}
	result, err := p.Qualify(table)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Export(&buf, result))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // header only
}

func TestExportFile(t *testing.T) {
	p, result := exportFixture(t)

	path := filepath.Join(t.TempDir(), "leads.csv")
	require.NoError(t, p.ExportFile(path, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Cliente_Formatado")
	assert.Contains(t, string(data), "Maria")
}
