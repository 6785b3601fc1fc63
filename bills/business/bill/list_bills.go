package bill

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/bills/model"
	"encore.app/bills/store/bills"
)

// ListBills returns one page of bills plus the total record count.
// Sort is resolved by the store against its column whitelist. The
// offset is computed in int64 so a huge page number stays a valid,
// merely empty, query instead of wrapping negative.
func (b *business) ListBills(ctx context.Context, page, size int, sort string) ([]*model.Bill, int64, error) {
	dbBills, err := b.billRepo.ListBills(ctx, bills.ListBillsParams{
		Limit:  int32(size),
		Offset: int64(page) * int64(size),
		Sort:   sort,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list bills"}
	}

	totalCount, err := b.billRepo.CountBills(ctx)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count bills"}
	}

	billList := make([]*model.Bill, len(dbBills))
	for i, dbBill := range dbBills {
		billList[i] = convertDBBillToModel(dbBill)
	}

	return billList, totalCount, nil
}
