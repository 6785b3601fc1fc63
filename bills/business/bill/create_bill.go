package bill

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"encore.app/bills/model"
	"encore.app/bills/store/bills"
)

// CreateBill persists a new bill and returns it with its assigned id.
func (b *business) CreateBill(ctx context.Context, bill *model.Bill) (*model.Bill, error) {
	dbBill, err := b.billRepo.CreateBill(ctx, bills.CreateBillParams{
		DueDate:     dateParam(bill.DueDate),
		PaidDate:    datePtrParam(bill.PaidDate),
		Amount:      numericFromDecimal(bill.Amount),
		Description: bill.Description,
		Status:      bill.Status,
	})
	if err != nil {
		return nil, mapWriteError(err, "failed to create bill")
	}

	return convertDBBillToModel(dbBill), nil
}

// mapWriteError classifies storage write failures. Schema constraints
// (NOT NULL, CHECK) are the backstop for malformed bills, so their
// violations surface as client errors rather than internal ones.
func mapWriteError(err error, internalMsg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
			return &errs.Error{Code: errs.InvalidArgument, Message: "bill violates a storage constraint: " + pgErr.ColumnName}
		}
	}
	return &errs.Error{Code: errs.Internal, Message: internalMsg}
}

// convertDBBillToModel converts a database Bill to a domain model Bill.
func convertDBBillToModel(dbBill bills.Bill) *model.Bill {
	bill := &model.Bill{
		ID:          dbBill.ID,
		DueDate:     dbBill.DueDate.Time,
		Amount:      decimalFromNumeric(dbBill.Amount),
		Description: dbBill.Description,
		Status:      dbBill.Status,
	}

	if dbBill.PaidDate.Valid {
		paid := dbBill.PaidDate.Time
		bill.PaidDate = &paid
	}

	return bill
}

func dateParam(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

func datePtrParam(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

func numericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func decimalFromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Decimal{}
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
