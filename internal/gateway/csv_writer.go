package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"cashflow-pipeline/internal/domain"
)

// Output file names inside the report directory.
const (
	CleanTransactionsFile = "transactions_clean.csv"
	MonthlySummaryFile    = "monthly_summary.csv"
)

// Derived columns appended after the original columns in the clean output.
var derivedColumns = []string{
	"signed_amount", "year", "month", "month_name", "day_of_week", "running_balance",
}

// CSVReportWriter implements the ReportWriter interface, writing both result
// sets as CSV files in a report directory. The directory is created on first
// write; numeric fields are formatted to two decimal places.
type CSVReportWriter struct {
	dir string
}

// NewCSVReportWriter creates a writer rooted at the given directory.
func NewCSVReportWriter(dir string) *CSVReportWriter {
	return &CSVReportWriter{dir: dir}
}

// WriteCleanTransactions writes one row per clean record: all original
// columns in input order, then the derived columns.
func (w *CSVReportWriter) WriteCleanTransactions(ctx context.Context, set *domain.TransactionSet) error {
	header := make([]string, 0, len(set.Columns)+len(derivedColumns))
	header = append(header, set.Columns...)
	header = append(header, derivedColumns...)

	rows := make([][]string, 0, len(set.Records))
	for _, tx := range set.Records {
		row := make([]string, 0, len(header))
		for _, column := range set.Columns {
			switch column {
			case domain.ColumnDate:
				row = append(row, tx.Date.Format(time.DateOnly))
			case domain.ColumnAmount:
				row = append(row, tx.Amount.Decimal.StringFixed(2))
			case domain.ColumnType:
				row = append(row, tx.Type)
			default:
				row = append(row, tx.Extra[column])
			}
		}
		row = append(row,
			tx.SignedAmount.StringFixed(2),
			strconv.Itoa(tx.Year),
			strconv.Itoa(tx.Month),
			tx.MonthName,
			tx.DayOfWeek,
			tx.RunningBalance.StringFixed(2),
		)
		rows = append(rows, row)
	}

	return w.writeFile(CleanTransactionsFile, header, rows)
}

// WriteMonthlySummary writes one row per distinct (year, month) group.
func (w *CSVReportWriter) WriteMonthlySummary(ctx context.Context, summary []domain.MonthlySummary) error {
	header := []string{"year", "month", "transaction_count", "total_income", "total_expense", "net_cashflow"}

	rows := make([][]string, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, []string{
			strconv.Itoa(s.Year),
			strconv.Itoa(s.Month),
			strconv.Itoa(s.TransactionCount),
			s.TotalIncome.StringFixed(2),
			s.TotalExpense.StringFixed(2),
			s.NetCashflow.StringFixed(2),
		})
	}

	return w.writeFile(MonthlySummaryFile, header, rows)
}

func (w *CSVReportWriter) writeFile(name string, header []string, rows [][]string) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create report directory %s: %w", w.dir, err)
	}

	path := filepath.Join(w.dir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		file.Close()
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			file.Close()
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
