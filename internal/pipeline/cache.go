package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/jumbo-cdp/leadqual/internal/model"
)

// resultCache memoizes the last qualification result keyed by the exact
// report content, so re-running an unchanged report is a no-op. A changed
// report always misses. Purely an optimization; holds a single entry.
type resultCache struct {
	mu     sync.Mutex
	key    string
	result *model.RunResult
}

func (c *resultCache) get(table model.Table) (*model.RunResult, bool) {
	key := fingerprint(table)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil || c.key != key {
		return nil, false
	}
	return c.result, true
}

func (c *resultCache) put(table model.Table, result *model.RunResult) {
	key := fingerprint(table)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = key
	c.result = result
}

// fingerprint hashes the full table content. Field and record separators are
// written explicitly so ["ab","c"] and ["a","bc"] never collide.
func fingerprint(table model.Table) string {
	h := sha256.New()
	writeRow := func(row []string) {
		for _, field := range row {
			h.Write([]byte(field))
			h.Write([]byte{0x1f})
		}
		h.Write([]byte{0x1e})
	}
	writeRow(table.Header)
	for _, row := range table.Rows {
		writeRow(row)
	}
	return hex.EncodeToString(h.Sum(nil))
}
