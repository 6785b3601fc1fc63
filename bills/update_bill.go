package bills

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

// UpdateBill replaces every mutable field of the bill with the payload's
// values. This is full replacement, not a merge.
//
//encore:api public path=/v1/bills/:id method=PUT
func (s *Service) UpdateBill(ctx context.Context, id int64, req *BillPayload) (*BillResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}

	bill, err := req.toModel()
	if err != nil {
		return nil, err
	}

	result, err := s.business.UpdateBill(ctx, id, bill)
	if err != nil {
		rlog.Error("failed to update bill", "error", err, "id", id)
		return nil, err
	}

	return &BillResponse{
		Bill: newBillView(result),
	}, nil
}
