package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupStatuses(t *testing.T) {
	idx := columnIndex{CustomerID: 0, Status: 1}
	rows := [][]string{
		{"1", "Pedido salvo"},
		{"2", "Pedido salvo"},
		{"2", "Pedido enviado"},
		{"3", "Pedido cancelado"},
		{"4", "pedido salvo"}, // case differs — not the target
	}

	hasOther := groupStatuses(rows, idx, "Pedido salvo")

	assert.False(t, hasOther["1"])
	assert.True(t, hasOther["2"])
	assert.True(t, hasOther["3"])
	assert.True(t, hasOther["4"])
}

func TestGroupStatuses_DisqualifyingRecordBeforeCandidate(t *testing.T) {
	idx := columnIndex{CustomerID: 0, Status: 1}
	rows := [][]string{
		{"1", "Pedido enviado"},
		{"1", "Pedido salvo"},
	}

	hasOther := groupStatuses(rows, idx, "Pedido salvo")
	assert.True(t, hasOther["1"])
}

func TestDedupe_StableFirstWins(t *testing.T) {
	idx := columnIndex{CustomerID: 0}
	rows := [][]string{
		{"2", "b"},
		{"1", "a"},
		{"2", "c"},
		{"3", "d"},
		{"1", "e"},
	}

	deduped := dedupe(rows, idx)

	require.Len(t, deduped, 3)
	assert.Equal(t, [][]string{{"2", "b"}, {"1", "a"}, {"3", "d"}}, deduped)
}

func TestDedupe_Empty(t *testing.T) {
	deduped := dedupe(nil, columnIndex{CustomerID: 0})
	assert.Empty(t, deduped)
}

func TestParseRecord_ShortRow(t *testing.T) {
	idx := columnIndex{CustomerID: 0, FullName: 1, Phone: 2, Attempts: 3, Status: 4, OrderID: -1, OrderValue: -1}

	rec := parseRecord([]string{"42", "maria"}, idx)

	assert.Equal(t, "42", rec.CustomerID)
	assert.Equal(t, "maria", rec.FullName)
	assert.Equal(t, "", rec.Phone)
	assert.Equal(t, AttemptsSentinel, rec.AttemptsSent)
	assert.Equal(t, "", rec.OrderValue)
}
