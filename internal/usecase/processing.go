package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"cashflow-pipeline/internal/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxFailedSamples caps how many unresolvable date values are surfaced in
// the diagnostics.
const maxFailedSamples = 5

var typeCaser = cases.Title(language.English)

// ProcessingUseCase orchestrates the transaction pipeline: normalize, resolve
// dates, filter, sign, enrich, sort, accumulate, aggregate, emit.
type ProcessingUseCase struct {
	repo     TransactionRepository
	writer   ReportWriter
	progress ProgressSink
}

// NewProcessingUseCase creates a new instance of the usecase. A nil progress
// sink disables diagnostics.
func NewProcessingUseCase(repo TransactionRepository, writer ReportWriter, progress ProgressSink) *ProcessingUseCase {
	if progress == nil {
		progress = NopSink{}
	}
	return &ProcessingUseCase{repo: repo, writer: writer, progress: progress}
}

// Process runs the full pipeline over the input file and writes both result
// sets. Per-row problems (unparseable date, missing amount or type) drop the
// row and are reported to the progress sink; only structural failures — an
// unreadable input, or a non-empty input where no date resolves at all —
// return an error, and then no output is produced.
func (uc *ProcessingUseCase) Process(ctx context.Context, inputPath string) (*domain.ProcessingResult, error) {
	// Step 1: Load.
	set, err := uc.repo.GetTransactions(ctx, inputPath)
	if err != nil {
		return nil, fmt.Errorf("could not load transactions: %w", err)
	}
	total := len(set.Records)
	uc.progress.RecordsLoaded(total, set.Columns)

	// Step 2: Normalize the type field.
	normalizeRecords(set.Records)

	// Step 3: Resolve dates through the fallback chain.
	stats := resolveDates(set.Records)
	uc.progress.DatesResolved(stats)
	if total > 0 && stats.FallbackFailures == total {
		return nil, fmt.Errorf("%w: all %d rows failed every parsing strategy", domain.ErrNoResolvableDates, total)
	}

	// Step 4: Drop rows missing a resolved date, an amount, or a type.
	clean := filterRecords(set.Records)
	uc.progress.RowsDropped(total-len(clean), len(clean))

	// Steps 5-6: Signed amounts and calendar features.
	for i := range clean {
		signAmount(&clean[i])
		if err := enrichCalendar(&clean[i]); err != nil {
			return nil, err
		}
	}

	// Step 7: Chronological order; ties keep their input order.
	sort.SliceStable(clean, func(i, j int) bool {
		return clean[i].Date.Before(clean[j].Date)
	})

	// Step 8: Running balance as a prefix sum in sorted order.
	balance := decimal.Zero
	for i := range clean {
		balance = balance.Add(clean[i].SignedAmount)
		clean[i].RunningBalance = balance
	}

	// Step 9: Monthly aggregation.
	summary := aggregateMonthly(clean)
	uc.progress.SummaryReady(len(summary))

	result := &domain.ProcessingResult{
		Transactions: domain.TransactionSet{Columns: set.Columns, Records: clean},
		Summary:      summary,
		Report: domain.ProcessingReport{
			TotalRows:      total,
			CleanRows:      len(clean),
			DroppedRows:    total - len(clean),
			DateResolution: stats,
			Months:         len(summary),
		},
	}

	// Step 10: Emit both result sets.
	if err := uc.writer.WriteCleanTransactions(ctx, &result.Transactions); err != nil {
		return nil, fmt.Errorf("could not write clean transactions: %w", err)
	}
	if err := uc.writer.WriteMonthlySummary(ctx, result.Summary); err != nil {
		return nil, fmt.Errorf("could not write monthly summary: %w", err)
	}

	return result, nil
}

// normalizeRecords trims and title-cases the type field in place.
func normalizeRecords(records []domain.Transaction) {
	for i := range records {
		records[i].Type = typeCaser.String(strings.TrimSpace(records[i].Type))
	}
}

// resolveDates runs the parsing chain over every record, tagging rows whose
// date cannot be resolved. Unresolvable rows never abort the run here; they
// are counted and sampled for the diagnostics.
func resolveDates(records []domain.Transaction) domain.DateResolutionStats {
	var stats domain.DateResolutionStats
	for i := range records {
		t, strategy := resolveDate(records[i].RawDate)
		if strategy != 0 {
			stats.PrimaryFailures++
		}
		if strategy < 0 {
			stats.FallbackFailures++
			if len(stats.FailedSamples) < maxFailedSamples {
				stats.FailedSamples = append(stats.FailedSamples, records[i].RawDate)
			}
			continue
		}
		records[i].Date = t
		records[i].DateResolved = true
	}
	return stats
}

// filterRecords keeps rows with a resolved date, a present amount, and a
// present type. Order-preserving. Callers needing the drop reason inspect
// the fields directly.
func filterRecords(records []domain.Transaction) []domain.Transaction {
	clean := make([]domain.Transaction, 0, len(records))
	for _, tx := range records {
		if tx.DateResolved && tx.Amount.Valid && tx.Type != "" {
			clean = append(clean, tx)
		}
	}
	return clean
}

// signAmount derives the cash-flow direction: expenses are outflows, every
// other type is an inflow.
func signAmount(tx *domain.Transaction) {
	abs := tx.Amount.Decimal.Abs()
	if tx.Type == domain.ExpenseType {
		tx.SignedAmount = abs.Neg()
	} else {
		tx.SignedAmount = abs
	}
}

// enrichCalendar derives the calendar feature columns. The filter guarantees
// a resolved date; hitting an unresolved one here is an invariant violation,
// not a recoverable condition.
func enrichCalendar(tx *domain.Transaction) error {
	if !tx.DateResolved {
		return fmt.Errorf("calendar enrichment reached an unresolved date %q", tx.RawDate)
	}
	tx.Year = tx.Date.Year()
	tx.Month = int(tx.Date.Month())
	tx.MonthName = tx.Date.Month().String()
	tx.DayOfWeek = tx.Date.Weekday().String()
	return nil
}

// aggregateMonthly groups clean records by (year, month) and computes the
// summary figures. Output is ordered ascending by (year, month).
func aggregateMonthly(records []domain.Transaction) []domain.MonthlySummary {
	type monthKey struct{ year, month int }

	groups := make(map[monthKey]*domain.MonthlySummary)
	keys := make([]monthKey, 0)
	for _, tx := range records {
		key := monthKey{tx.Year, tx.Month}
		s, ok := groups[key]
		if !ok {
			s = &domain.MonthlySummary{
				Year:         key.year,
				Month:        key.month,
				TotalIncome:  decimal.Zero,
				TotalExpense: decimal.Zero,
				NetCashflow:  decimal.Zero,
			}
			groups[key] = s
			keys = append(keys, key)
		}
		s.TransactionCount++
		switch {
		case tx.SignedAmount.IsPositive():
			s.TotalIncome = s.TotalIncome.Add(tx.SignedAmount)
		case tx.SignedAmount.IsNegative():
			s.TotalExpense = s.TotalExpense.Add(tx.SignedAmount.Neg())
		}
		s.NetCashflow = s.NetCashflow.Add(tx.SignedAmount)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	summary := make([]domain.MonthlySummary, 0, len(keys))
	for _, key := range keys {
		summary = append(summary, *groups[key])
	}
	return summary
}
