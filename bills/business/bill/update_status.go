package bill

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/bills/store/bills"
)

// UpdateBillStatus changes only the status label of an existing bill.
// Status is free text; ledgers use "pending" and "paid" but the service
// does not constrain the set.
func (b *business) UpdateBillStatus(ctx context.Context, id int64, status string) error {
	_, err := b.billRepo.UpdateBillStatus(ctx, bills.UpdateBillStatusParams{
		ID:     id,
		Status: status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "bill not found"}
		}
		return mapWriteError(err, "failed to update bill status")
	}

	return nil
}
