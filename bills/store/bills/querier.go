package bills

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// Querier is the narrow persistence contract the business layer consumes.
type Querier interface {
	CreateBill(ctx context.Context, arg CreateBillParams) (Bill, error)
	// CreateBills inserts the whole batch in one statement; either every
	// row is persisted or none is.
	CreateBills(ctx context.Context, arg CreateBillsParams) ([]Bill, error)
	GetBill(ctx context.Context, id int64) (Bill, error)
	UpdateBill(ctx context.Context, arg UpdateBillParams) (Bill, error)
	UpdateBillStatus(ctx context.Context, arg UpdateBillStatusParams) (Bill, error)
	ListBills(ctx context.Context, arg ListBillsParams) ([]Bill, error)
	ListAllBills(ctx context.Context) ([]Bill, error)
	CountBills(ctx context.Context) (int64, error)
	SumPaidBetween(ctx context.Context, arg SumPaidBetweenParams) (pgtype.Numeric, error)
}

var _ Querier = (*Queries)(nil)
