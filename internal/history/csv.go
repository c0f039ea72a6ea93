package history

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/JunhyunKang/mock-sol/internal/model"
)

// Header is the CSV header for exported statements.
const Header = "id,type,amount,balance,description,bank,account_number,date,time"

const (
	numFields     = 9
	colID         = 0
	colType       = 1
	colAmount     = 2
	colBalance    = 3
	colDesc       = 4
	colBank       = 5
	colAccountNum = 6
	colDate       = 7
	colTime       = 8
)

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = t.ID
	row[colType] = string(t.Direction)
	row[colAmount] = t.Amount.String()
	row[colBalance] = t.Balance.String()
	row[colDesc] = t.Description
	row[colBank] = t.Bank
	row[colAccountNum] = t.AccountNumber
	row[colDate] = t.Date
	row[colTime] = t.Time
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}
	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	return model.Transaction{
		ID:            record[colID],
		Direction:     model.Direction(record[colType]),
		Amount:        amount,
		Balance:       balance,
		Description:   record[colDesc],
		Bank:          record[colBank],
		AccountNumber: record[colAccountNum],
		Date:          record[colDate],
		Time:          record[colTime],
	}, nil
}

// WriteTransactions writes a statement CSV with header.
func WriteTransactions(w io.Writer, records []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"id", "type", "amount", "balance", "description", "bank", "account_number", "date", "time"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, t := range records {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing transaction %s: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadTransactions reads a statement CSV produced by WriteTransactions.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var out []model.Transaction
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, tx)
	}
	return out, nil
}
