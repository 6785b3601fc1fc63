package bill

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/bills/model"
	"encore.app/bills/store/bills"
)

// UpdateBill overwrites every mutable field of an existing bill. The
// single UPDATE ... RETURNING both detects the missing row and performs
// the replacement, so a miss writes nothing.
func (b *business) UpdateBill(ctx context.Context, id int64, bill *model.Bill) (*model.Bill, error) {
	dbBill, err := b.billRepo.UpdateBill(ctx, bills.UpdateBillParams{
		ID:          id,
		DueDate:     dateParam(bill.DueDate),
		PaidDate:    datePtrParam(bill.PaidDate),
		Amount:      numericFromDecimal(bill.Amount),
		Description: bill.Description,
		Status:      bill.Status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "bill not found"}
		}
		return nil, mapWriteError(err, "failed to update bill")
	}

	return convertDBBillToModel(dbBill), nil
}
