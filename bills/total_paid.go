package bills

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/bills/ledger"
)

type TotalPaidRequest struct {
	StartDate string `query:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"required,datetime=2006-01-02"`
}

type TotalPaidResponse struct {
	TotalPaid decimal.Decimal `json:"total_paid"`
}

// GetTotalPaid sums the amounts paid inside the inclusive date window.
// The window is not checked for ordering; an inverted window sums to 0.
//
//encore:api public path=/v1/reports/total-paid method=GET
func (s *Service) GetTotalPaid(ctx context.Context, req *TotalPaidRequest) (*TotalPaidResponse, error) {
	startDate, err := time.Parse(ledger.DateLayout, req.StartDate)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid start_date"}
	}
	endDate, err := time.Parse(ledger.DateLayout, req.EndDate)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid end_date"}
	}

	total, err := s.business.TotalPaid(ctx, startDate, endDate)
	if err != nil {
		rlog.Error("failed to sum paid bills", "error", err)
		return nil, err
	}

	return &TotalPaidResponse{TotalPaid: total}, nil
}

// Validate implements validation for TotalPaidRequest
func (r *TotalPaidRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
