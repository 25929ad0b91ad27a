package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"cashflow-pipeline/internal/domain"

	"github.com/shopspring/decimal"
)

// CSVTransactionRepository implements the TransactionRepository interface for
// CSV files.
type CSVTransactionRepository struct{}

// NewCSVTransactionRepository creates a new repository instance.
func NewCSVTransactionRepository() *CSVTransactionRepository {
	return &CSVTransactionRepository{}
}

// GetTransactions reads the input file into typed-but-unvalidated records.
// Column names are matched after trimming and lower-casing. A row with a
// missing or non-numeric amount is kept with an invalid amount; validation
// happens downstream. Only a structurally broken file (unreadable, no
// header, required column absent) is an error.
func (r *CSVTransactionRepository) GetTransactions(ctx context.Context, path string) (*domain.TransactionSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // ragged rows are a per-row concern, not a file error

	headerRow, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	columns, index := normalizeHeader(headerRow)
	for _, required := range []string{domain.ColumnDate, domain.ColumnAmount, domain.ColumnType} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingColumn, required)
		}
	}

	var extras []string
	for _, c := range columns {
		switch c {
		case domain.ColumnDate, domain.ColumnAmount, domain.ColumnType:
		default:
			extras = append(extras, c)
		}
	}

	set := &domain.TransactionSet{Columns: columns}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		field := func(column string) string {
			if i := index[column]; i < len(record) {
				return record[i]
			}
			return ""
		}

		tx := domain.Transaction{
			RawDate: strings.TrimSpace(field(domain.ColumnDate)),
			Type:    field(domain.ColumnType),
		}
		if s := strings.TrimSpace(field(domain.ColumnAmount)); s != "" {
			if v, err := decimal.NewFromString(s); err == nil {
				tx.Amount = decimal.NullDecimal{Decimal: v, Valid: true}
			}
		}
		if len(extras) > 0 {
			tx.Extra = make(map[string]string, len(extras))
			for _, c := range extras {
				tx.Extra[c] = field(c)
			}
		}

		set.Records = append(set.Records, tx)
	}
	return set, nil
}

// normalizeHeader trims and lower-cases column names, returning the ordered
// (deduplicated) column list and a name-to-position index. A duplicated name
// resolves to its first occurrence.
func normalizeHeader(row []string) ([]string, map[string]int) {
	columns := make([]string, 0, len(row))
	index := make(map[string]int, len(row))
	for i, h := range row {
		name := strings.ToLower(strings.TrimSpace(h))
		if _, seen := index[name]; seen {
			continue
		}
		index[name] = i
		columns = append(columns, name)
	}
	return columns, index
}
