package bill

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.app/bills/store/bills"
)

func testDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func testNumeric(t *testing.T, s string) pgtype.Numeric {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// dbBill builds a store row fixture; an empty paidDate leaves the column NULL.
func dbBill(t *testing.T, id int64, dueDate, paidDate, amount, description, status string) bills.Bill {
	t.Helper()
	row := bills.Bill{
		ID:          id,
		DueDate:     pgtype.Date{Time: testDate(t, dueDate), Valid: true},
		Amount:      testNumeric(t, amount),
		Description: description,
		Status:      status,
	}
	if paidDate != "" {
		row.PaidDate = pgtype.Date{Time: testDate(t, paidDate), Valid: true}
	}
	return row
}
