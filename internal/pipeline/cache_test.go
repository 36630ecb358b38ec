package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jumbo-cdp/leadqual/internal/model"
)

func TestFingerprint_FieldBoundaries(t *testing.T) {
	a := model.Table{Header: []string{"ab", "c"}}
	b := model.Table{Header: []string{"a", "bc"}}
	assert.NotEqual(t, fingerprint(a), fingerprint(b))
}

func TestFingerprint_RowBoundaries(t *testing.T) {
	a := model.Table{Header: []string{"h"}, Rows: [][]string{{"1", "2"}}}
	b := model.Table{Header: []string{"h"}, Rows: [][]string{{"1"}, {"2"}}}
	assert.NotEqual(t, fingerprint(a), fingerprint(b))
}

func TestResultCache_MissOnChange(t *testing.T) {
	var c resultCache
	table := model.Table{Header: []string{"h"}, Rows: [][]string{{"1"}}}
	res := &model.RunResult{RunID: "r1"}

	_, ok := c.get(table)
	assert.False(t, ok)

	c.put(table, res)
	got, ok := c.get(table)
	assert.True(t, ok)
	assert.Same(t, res, got)

	changed := model.Table{Header: []string{"h"}, Rows: [][]string{{"2"}}}
	_, ok = c.get(changed)
	assert.False(t, ok)
}
