package usecase

import (
	"context"

	"cashflow-pipeline/internal/domain"
)

// The usecase layer depends on these interfaces, not on concrete gateways.
//
//go:generate mockgen -destination=mocks/mock_collaborators.go -source=interface.go

// TransactionRepository loads raw transaction records from a source.
type TransactionRepository interface {
	GetTransactions(ctx context.Context, path string) (*domain.TransactionSet, error)
}

// ReportWriter persists the two result sets of a run.
type ReportWriter interface {
	WriteCleanTransactions(ctx context.Context, set *domain.TransactionSet) error
	WriteMonthlySummary(ctx context.Context, summary []domain.MonthlySummary) error
}

// ProgressSink receives structured diagnostics as the pipeline advances.
// Implementations render them however they like; nothing reported here may
// alter a processing outcome.
type ProgressSink interface {
	RecordsLoaded(total int, columns []string)
	DatesResolved(stats domain.DateResolutionStats)
	RowsDropped(dropped, kept int)
	SummaryReady(months int)
}

// NopSink discards all diagnostics.
type NopSink struct{}

func (NopSink) RecordsLoaded(int, []string)              {}
func (NopSink) DatesResolved(domain.DateResolutionStats) {}
func (NopSink) RowsDropped(int, int)                     {}
func (NopSink) SummaryReady(int)                         {}
