package gateway

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cashflow-pipeline/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCSVReportWriter_WriteCleanTransactions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	writer := NewCSVReportWriter(dir)

	set := &domain.TransactionSet{
		Columns: []string{"date", "amount", "type", "description"},
		Records: []domain.Transaction{
			{
				Date:           time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
				DateResolved:   true,
				Amount:         decimal.NullDecimal{Decimal: dec("100"), Valid: true},
				Type:           "Income",
				Extra:          map[string]string{"description": "Salary"},
				SignedAmount:   dec("100"),
				Year:           2024,
				Month:          1,
				MonthName:      "January",
				DayOfWeek:      "Friday",
				RunningBalance: dec("100"),
			},
			{
				Date:           time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
				DateResolved:   true,
				Amount:         decimal.NullDecimal{Decimal: dec("40"), Valid: true},
				Type:           "Expense",
				Extra:          map[string]string{"description": "Groceries"},
				SignedAmount:   dec("-40"),
				Year:           2024,
				Month:          1,
				MonthName:      "January",
				DayOfWeek:      "Saturday",
				RunningBalance: dec("60"),
			},
		},
	}

	require.NoError(t, writer.WriteCleanTransactions(context.Background(), set))

	got := readCSV(t, filepath.Join(dir, CleanTransactionsFile))
	want := [][]string{
		{"date", "amount", "type", "description", "signed_amount", "year", "month", "month_name", "day_of_week", "running_balance"},
		{"2024-01-05", "100.00", "Income", "Salary", "100.00", "2024", "1", "January", "Friday", "100.00"},
		{"2024-01-20", "40.00", "Expense", "Groceries", "-40.00", "2024", "1", "January", "Saturday", "60.00"},
	}
	assert.Equal(t, want, got)
}

func TestCSVReportWriter_WriteMonthlySummary(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	writer := NewCSVReportWriter(dir)

	summary := []domain.MonthlySummary{
		{Year: 2024, Month: 1, TransactionCount: 2, TotalIncome: dec("100"), TotalExpense: dec("40"), NetCashflow: dec("60")},
		{Year: 2024, Month: 2, TransactionCount: 1, TotalIncome: dec("0"), TotalExpense: dec("19.99"), NetCashflow: dec("-19.99")},
	}

	require.NoError(t, writer.WriteMonthlySummary(context.Background(), summary))

	got := readCSV(t, filepath.Join(dir, MonthlySummaryFile))
	want := [][]string{
		{"year", "month", "transaction_count", "total_income", "total_expense", "net_cashflow"},
		{"2024", "1", "2", "100.00", "40.00", "60.00"},
		{"2024", "2", "1", "0.00", "19.99", "-19.99"},
	}
	assert.Equal(t, want, got)
}

func TestCSVReportWriter_EmptyResults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	writer := NewCSVReportWriter(dir)
	ctx := context.Background()

	set := &domain.TransactionSet{Columns: []string{"date", "amount", "type"}}
	require.NoError(t, writer.WriteCleanTransactions(ctx, set))
	require.NoError(t, writer.WriteMonthlySummary(ctx, nil))

	clean := readCSV(t, filepath.Join(dir, CleanTransactionsFile))
	assert.Equal(t, [][]string{
		{"date", "amount", "type", "signed_amount", "year", "month", "month_name", "day_of_week", "running_balance"},
	}, clean)

	summary := readCSV(t, filepath.Join(dir, MonthlySummaryFile))
	assert.Equal(t, [][]string{
		{"year", "month", "transaction_count", "total_income", "total_expense", "net_cashflow"},
	}, summary)
}

func TestCSVReportWriter_DirectoryError(t *testing.T) {
	// A regular file where the report directory should be.
	blocked := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	writer := NewCSVReportWriter(blocked)
	err := writer.WriteMonthlySummary(context.Background(), nil)
	assert.Error(t, err)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}
