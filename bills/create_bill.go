package bills

import (
	"context"

	"encore.dev/rlog"
)

type BillResponse struct {
	Bill BillView `json:"bill"`
}

//encore:api public path=/v1/bills method=POST tag:idempotency
func (s *Service) CreateBill(ctx context.Context, req *BillPayload) (*BillResponse, error) {
	bill, err := req.toModel()
	if err != nil {
		return nil, err
	}

	result, err := s.business.CreateBill(ctx, bill)
	if err != nil {
		rlog.Error("failed to create bill", "error", err)
		return nil, err
	}

	return &BillResponse{
		Bill: newBillView(result),
	}, nil
}
