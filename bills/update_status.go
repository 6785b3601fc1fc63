package bills

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateBillStatus changes only the bill's status label; every other
// field is left untouched.
//
//encore:api public path=/v1/bills/:id/status method=PATCH
func (s *Service) UpdateBillStatus(ctx context.Context, id int64, req *UpdateStatusRequest) error {
	if id <= 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}

	if err := s.business.UpdateBillStatus(ctx, id, req.Status); err != nil {
		rlog.Error("failed to update bill status", "error", err, "id", id)
		return err
	}

	return nil
}

// Validate implements validation for UpdateStatusRequest
func (r *UpdateStatusRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
