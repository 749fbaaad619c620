// Package dataset loads the order file into memory. The whole file is read
// before any document is built; malformed numeric fields fail the load with
// row context.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/shoplens/shoplens/internal/domain"
)

// Required column headers. Extra columns are ignored.
const (
	colOrderID     = "Order ID"
	colAmount      = "Amount"
	colProfit      = "Profit"
	colQuantity    = "Quantity"
	colCategory    = "Category"
	colSubCategory = "Sub-Category"
)

// Loader reads order records from a delimited file.
type Loader struct {
	path   string
	logger *zap.Logger
}

// New creates a loader for the given file path.
func New(path string, logger *zap.Logger) *Loader {
	return &Loader{path: path, logger: logger}
}

// Load reads and parses every row of the order file.
func (l *Loader) Load() ([]domain.OrderRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", l.path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("data file %s is empty", l.path)
	}

	cols, err := columnIndex(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}

	records := make([]domain.OrderRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}

	l.logger.Info("loaded order records",
		zap.String("file", l.path),
		zap.Int("rows", len(records)),
	)

	return records, nil
}

// LoadDocuments loads the file and builds one indexable document per record.
func (l *Loader) LoadDocuments() ([]domain.Document, error) {
	records, err := l.Load()
	if err != nil {
		return nil, err
	}

	docs := make([]domain.Document, len(records))
	for i, rec := range records {
		docs[i] = domain.BuildDocument(rec, i)
	}
	return docs, nil
}

func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colOrderID, colAmount, colProfit, colQuantity, colCategory, colSubCategory} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}
	return cols, nil
}

func parseRow(row []string, cols map[string]int) (domain.OrderRecord, error) {
	get := func(col string) string {
		idx := cols[col]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	amount, err := strconv.ParseFloat(get(colAmount), 64)
	if err != nil {
		return domain.OrderRecord{}, fmt.Errorf("%w: amount %q", domain.ErrMalformedRecord, get(colAmount))
	}
	profit, err := strconv.ParseFloat(get(colProfit), 64)
	if err != nil {
		return domain.OrderRecord{}, fmt.Errorf("%w: profit %q", domain.ErrMalformedRecord, get(colProfit))
	}
	quantity, err := strconv.Atoi(get(colQuantity))
	if err != nil {
		return domain.OrderRecord{}, fmt.Errorf("%w: quantity %q", domain.ErrMalformedRecord, get(colQuantity))
	}

	return domain.OrderRecord{
		OrderID:     get(colOrderID),
		Amount:      amount,
		Profit:      profit,
		Quantity:    quantity,
		Category:    get(colCategory),
		SubCategory: get(colSubCategory),
	}, nil
}
