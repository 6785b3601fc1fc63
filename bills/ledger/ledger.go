// Package ledger reads and writes the CSV bill ledger format:
// a header row followed by one bill per line, columns
// data_vencimento, data_pagamento, valor, descricao, situacao.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"encore.app/bills/model"
)

const DateLayout = "2006-01-02"

const (
	colDueDate     = "data_vencimento"
	colPaidDate    = "data_pagamento"
	colAmount      = "valor"
	colDescription = "descricao"
	colStatus      = "situacao"
)

var requiredColumns = []string{colDueDate, colPaidDate, colAmount, colDescription, colStatus}

// Parse decodes a full ledger. Header matching ignores case and
// surrounding whitespace; column order is free. Any malformed row aborts
// the parse with an error naming the offending row, so a failed import
// never yields a partial batch.
func Parse(r io.Reader) ([]*model.Bill, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("ledger is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index, err := resolveHeader(header)
	if err != nil {
		return nil, err
	}

	var parsed []*model.Bill
	for rowNum := 1; ; rowNum++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		bill, err := parseRow(record, index)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		parsed = append(parsed, bill)
	}
	return parsed, nil
}

// Write encodes bills in the same format Parse accepts.
func Write(w io.Writer, items []*model.Bill) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(requiredColumns); err != nil {
		return err
	}
	for _, b := range items {
		paid := ""
		if b.PaidDate != nil {
			paid = b.PaidDate.Format(DateLayout)
		}
		record := []string{
			b.DueDate.Format(DateLayout),
			paid,
			b.Amount.StringFixed(2),
			b.Description,
			b.Status,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func resolveHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			// Spreadsheet exports often lead with a UTF-8 BOM.
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing column %q in header", name)
		}
	}
	return index, nil
}

func parseRow(record []string, index map[string]int) (*model.Bill, error) {
	field := func(name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	dueDate, err := time.Parse(DateLayout, field(colDueDate))
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", colDueDate, field(colDueDate))
	}
	// An empty paid date means the bill is still unpaid, matching what
	// Write emits for a nil PaidDate.
	var paidDate *time.Time
	if raw := field(colPaidDate); raw != "" {
		d, err := time.Parse(DateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", colPaidDate, raw)
		}
		paidDate = &d
	}
	amount, err := decimal.NewFromString(field(colAmount))
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", colAmount, field(colAmount))
	}

	return &model.Bill{
		DueDate:     dueDate,
		PaidDate:    paidDate,
		Amount:      amount,
		Description: field(colDescription),
		Status:      field(colStatus),
	}, nil
}
