package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Required input columns, after header normalization (trim + lower-case).
const (
	ColumnDate   = "date"
	ColumnAmount = "amount"
	ColumnType   = "type"
)

// ExpenseType is the one distinguished transaction type. Every other
// normalized type label is treated as an inflow.
const ExpenseType = "Expense"

var (
	// ErrMissingColumn indicates the input file lacks a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrNoResolvableDates indicates no row in a non-empty input carried a
	// date any parsing strategy could resolve.
	ErrNoResolvableDates = errors.New("no resolvable dates in input")
)

// Transaction represents one input row. The loader fills the raw fields;
// each pipeline stage adds its own derived fields and touches nothing else.
type Transaction struct {
	// Raw fields, as loaded.
	RawDate string
	Amount  decimal.NullDecimal // invalid when the amount is missing or non-numeric
	Type    string              // title-cased by the normalizer
	Extra   map[string]string   // pass-through columns, untouched

	// Set by the date resolver.
	Date         time.Time
	DateResolved bool

	// Set by the signer, enricher and accumulator.
	SignedAmount   decimal.Decimal
	Year           int
	Month          int // 1-12
	MonthName      string
	DayOfWeek      string
	RunningBalance decimal.Decimal
}

// TransactionSet is the full in-memory record set for one run. Columns
// preserves the normalized input header order so pass-through columns keep
// their position in the clean output.
type TransactionSet struct {
	Columns []string
	Records []Transaction
}
