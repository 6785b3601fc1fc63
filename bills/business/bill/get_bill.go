package bill

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/bills/model"
)

// GetBill retrieves a bill by id.
func (b *business) GetBill(ctx context.Context, id int64) (*model.Bill, error) {
	dbBill, err := b.billRepo.GetBill(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "bill not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get bill"}
	}

	return convertDBBillToModel(dbBill), nil
}
