// Package pipeline implements the lead qualification pipeline: schema
// validation, attempts normalization, status-history grouping, deduplication,
// eligibility filtering, message personalization, and metrics accounting.
package pipeline

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jumbo-cdp/leadqual/internal/config"
	"github.com/jumbo-cdp/leadqual/internal/model"
)

// Pipeline runs the qualification pass over one report table. Safe to reuse
// across runs; results for an unchanged table are memoized.
type Pipeline struct {
	cfg   *config.Config
	cache resultCache
}

// New creates a Pipeline from the application configuration.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Qualify runs the full pipeline. Single synchronous pass: validation aborts
// before any row-level work; row-level anomalies degrade to sentinels and
// never abort the batch. A run over headers-only input succeeds with an
// empty lead list and zeroed metrics.
func (p *Pipeline) Qualify(table model.Table) (*model.RunResult, error) {
	if cached, ok := p.cache.get(table); ok {
		zap.L().Debug("pipeline: unchanged report, returning memoized result",
			zap.String("run_id", cached.RunID))
		return cached, nil
	}

	idx, err := ValidateSchema(table.Header, p.cfg.Columns)
	if err != nil {
		return nil, err
	}

	metrics := model.Metrics{OriginalCount: len(table.Rows)}
	target := p.cfg.Filter.TargetStatus

	// Status exclusivity is decided over the raw pre-dedup history, so a
	// customer with any record outside the target status is disqualified even
	// when the surviving row alone would pass.
	hasOther := groupStatuses(table.Rows, idx, target)

	deduped := dedupe(table.Rows, idx)
	metrics.RemovedDuplicates = metrics.OriginalCount - len(deduped)

	composer := NewComposer(p.cfg.Message)
	leads := make([]model.QualifiedLead, 0, len(deduped))
	for _, row := range deduped {
		rec := parseRecord(row, idx)
		if !qualifies(rec, hasOther, target) {
			continue
		}

		firstName, body := composer.Compose(rec.FullName)
		lead := model.QualifiedLead{
			CustomerRecord:   rec,
			DisplayFirstName: firstName,
			MessageBody:      body,
		}
		if idx.OrderValue >= 0 && rec.OrderValue != "" {
			lead.OrderValueDisplay = FormatBRL(rec.OrderValue)
		}
		leads = append(leads, lead)
	}
	metrics.RemovedByFilter = len(deduped) - len(leads)

	result := &model.RunResult{
		RunID:   uuid.NewString(),
		Header:  table.Header,
		Leads:   leads,
		Metrics: metrics,
	}
	p.cache.put(table, result)

	zap.L().Info("pipeline: qualification complete",
		zap.String("run_id", result.RunID),
		zap.Int("original", metrics.OriginalCount),
		zap.Int("removed_duplicates", metrics.RemovedDuplicates),
		zap.Int("removed_by_filter", metrics.RemovedByFilter),
		zap.Int("leads", len(leads)),
	)

	return result, nil
}
