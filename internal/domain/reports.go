package domain

import "github.com/shopspring/decimal"

// MonthlySummary aggregates all clean transactions sharing a (year, month) key.
type MonthlySummary struct {
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	TransactionCount int             `json:"transaction_count"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpense     decimal.Decimal `json:"total_expense"`
	NetCashflow      decimal.Decimal `json:"net_cashflow"`
}

// DateResolutionStats reports how the date parsing chain fared across a run.
type DateResolutionStats struct {
	PrimaryFailures  int      `json:"primary_failures"`  // rows the day-first strategy could not parse
	FallbackFailures int      `json:"fallback_failures"` // rows still unresolved after the generic fallback
	FailedSamples    []string `json:"failed_samples"`    // capped sample of the unresolvable values
}

// ProcessingReport provides high-level statistics of one pipeline run.
type ProcessingReport struct {
	TotalRows      int                 `json:"total_rows"`
	CleanRows      int                 `json:"clean_rows"`
	DroppedRows    int                 `json:"dropped_rows"`
	DateResolution DateResolutionStats `json:"date_resolution"`
	Months         int                 `json:"months"`
}

// ProcessingResult is the top-level structure holding both result sets and
// the run report.
type ProcessingResult struct {
	Transactions TransactionSet
	Summary      []MonthlySummary
	Report       ProcessingReport
}
