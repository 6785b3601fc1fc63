package bill

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"encore.app/bills/model"
	"encore.app/bills/store/bills"
)

type Business interface {
	CreateBill(ctx context.Context, bill *model.Bill) (*model.Bill, error)
	GetBill(ctx context.Context, id int64) (*model.Bill, error)
	UpdateBill(ctx context.Context, id int64, bill *model.Bill) (*model.Bill, error)
	UpdateBillStatus(ctx context.Context, id int64, status string) error
	ListBills(ctx context.Context, page, size int, sort string) ([]*model.Bill, int64, error)
	TotalPaid(ctx context.Context, startDate, endDate time.Time) (decimal.Decimal, error)
	ImportBills(ctx context.Context, r io.Reader) ([]*model.Bill, error)
	ExportBills(ctx context.Context, w io.Writer) error
}

// business handles bill lifecycle logic on top of the store querier.
type business struct {
	billRepo bills.Querier
}

// NewBillBusiness creates the bill business layer.
func NewBillBusiness(billRepo bills.Querier) Business {
	return &business{
		billRepo: billRepo,
	}
}
