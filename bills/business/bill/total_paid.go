package bill

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"encore.app/bills/store/bills"
)

// TotalPaid sums the amount of every bill whose paid date falls within
// [startDate, endDate]. An empty or inverted window sums to zero; the
// window is not validated here.
func (b *business) TotalPaid(ctx context.Context, startDate, endDate time.Time) (decimal.Decimal, error) {
	total, err := b.billRepo.SumPaidBetween(ctx, bills.SumPaidBetweenParams{
		StartDate: dateParam(startDate),
		EndDate:   dateParam(endDate),
	})
	if err != nil {
		return decimal.Decimal{}, &errs.Error{Code: errs.Internal, Message: "failed to sum paid bills"}
	}

	return decimalFromNumeric(total), nil
}
