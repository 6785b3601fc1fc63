package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is a payable obligation. Dates are calendar dates (midnight UTC,
// no time-of-day semantics). A zero ID means the bill has never been
// persisted; the store assigns the ID on first save.
type Bill struct {
	ID          int64           `json:"id"`
	DueDate     time.Time       `json:"due_date"`
	PaidDate    *time.Time      `json:"paid_date,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
}

// Status values observed in ledgers. Status is free text, not a closed
// enumeration; these are defaults, not the full set.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)
