package bill

import (
	"context"
	"io"

	"encore.dev/beta/errs"

	"encore.app/bills/ledger"
	"encore.app/bills/model"
)

// ExportBills writes every bill to w in the CSV ledger format, ordered
// by id. The output round-trips through ImportBills.
func (b *business) ExportBills(ctx context.Context, w io.Writer) error {
	dbBills, err := b.billRepo.ListAllBills(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to list bills"}
	}

	exported := make([]*model.Bill, len(dbBills))
	for i, dbBill := range dbBills {
		exported[i] = convertDBBillToModel(dbBill)
	}

	if err := ledger.Write(w, exported); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to write CSV file"}
	}

	return nil
}
