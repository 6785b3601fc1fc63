package bill

import (
	"context"
	"io"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/bills/ledger"
	"encore.app/bills/model"
	"encore.app/bills/store/bills"
)

// ImportBills parses a CSV ledger and persists every row in one bulk
// save. The parse runs to completion before anything is written, and
// the save itself is a single statement, so a failing row means zero
// bills from the upload are persisted.
func (b *business) ImportBills(ctx context.Context, r io.Reader) ([]*model.Bill, error) {
	parsed, err := ledger.Parse(r)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "failed to parse CSV file: " + err.Error()}
	}
	if len(parsed) == 0 {
		return nil, nil
	}

	params := bills.CreateBillsParams{
		DueDates:     make([]pgtype.Date, len(parsed)),
		PaidDates:    make([]pgtype.Date, len(parsed)),
		Amounts:      make([]pgtype.Numeric, len(parsed)),
		Descriptions: make([]string, len(parsed)),
		Statuses:     make([]string, len(parsed)),
	}
	for i, bill := range parsed {
		params.DueDates[i] = dateParam(bill.DueDate)
		params.PaidDates[i] = datePtrParam(bill.PaidDate)
		params.Amounts[i] = numericFromDecimal(bill.Amount)
		params.Descriptions[i] = bill.Description
		params.Statuses[i] = bill.Status
	}

	dbBills, err := b.billRepo.CreateBills(ctx, params)
	if err != nil {
		return nil, mapWriteError(err, "failed to save imported bills")
	}

	imported := make([]*model.Bill, len(dbBills))
	for i, dbBill := range dbBills {
		imported[i] = convertDBBillToModel(dbBill)
	}

	return imported, nil
}
