package models

import (
	"fmt"
	"strings"
	"time"
)

// Transaction types accepted by the ledger.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// DefaultUserID is the account a transaction is attributed to when the
// request body carries no user_id. Kept from the original behavior:
// omitting user_id silently books the row against account 1 instead of
// rejecting the request.
const DefaultUserID int64 = 1

// ValidTransactionType reports whether t is one of the accepted
// transaction types. Only the update path enforces this; create does
// not, matching the existing API behavior.
func ValidTransactionType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

const dateLayout = "2006-01-02"

// Date is a calendar day that marshals as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// Transaction represents a row in the transactions table.
type Transaction struct {
	TransactionID   int64   `json:"transaction_id"`
	UserID          int64   `json:"user_id"`
	Amount          float64 `json:"amount"`
	TransactionType string  `json:"transaction_type"`
	Category        string  `json:"category"`
	TransactionDate Date    `json:"transaction_date"`
	Description     string  `json:"description"`
}

// CreateTransactionRequest is the JSON body for POST /income/.
// UserID is a pointer so an absent field can fall back to DefaultUserID.
type CreateTransactionRequest struct {
	UserID          *int64  `json:"user_id"`
	Amount          float64 `json:"amount"`
	Category        string  `json:"category"`
	TransactionType string  `json:"transaction_type"`
	TransactionDate Date    `json:"transaction_date"`
	Description     string  `json:"description"`
}

// UpdateTransactionRequest is the JSON body for PUT /income/{id}.
// All five fields are overwritten; partial updates are not supported.
type UpdateTransactionRequest struct {
	Amount          float64 `json:"amount"`
	Category        string  `json:"category"`
	TransactionType string  `json:"transaction_type"`
	TransactionDate Date    `json:"transaction_date"`
	Description     string  `json:"description"`
}
