package bills

import (
	"time"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"encore.app/bills/ledger"
	"encore.app/bills/model"
)

// BillPayload is the external write shape of a bill: every field except
// the storage-assigned id, which callers never supply. Dates use the
// same yyyy-MM-dd layout as the CSV ledger.
type BillPayload struct {
	DueDate     string          `json:"due_date" validate:"required,datetime=2006-01-02"`
	PaidDate    string          `json:"paid_date" validate:"omitempty,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Status      string          `json:"status" validate:"required"`
}

// Validate implements validation for BillPayload using go-playground/validator
func (p *BillPayload) Validate() error {
	if err := validate.Struct(p); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

// BillView is the external read shape: the payload fields plus the id.
type BillView struct {
	ID          int64           `json:"id"`
	DueDate     string          `json:"due_date"`
	PaidDate    string          `json:"paid_date,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
}

// toModel converts the payload to a not-yet-persisted entity.
func (p *BillPayload) toModel() (*model.Bill, error) {
	dueDate, err := time.Parse(ledger.DateLayout, p.DueDate)
	if err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid due_date"}
	}

	b := &model.Bill{
		DueDate:     dueDate,
		Amount:      p.Amount,
		Description: p.Description,
		Status:      p.Status,
	}

	if p.PaidDate != "" {
		paidDate, err := time.Parse(ledger.DateLayout, p.PaidDate)
		if err != nil {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid paid_date"}
		}
		b.PaidDate = &paidDate
	}

	return b, nil
}

func newBillView(b *model.Bill) BillView {
	view := BillView{
		ID:          b.ID,
		DueDate:     b.DueDate.Format(ledger.DateLayout),
		Amount:      b.Amount,
		Description: b.Description,
		Status:      b.Status,
	}

	if b.PaidDate != nil {
		view.PaidDate = b.PaidDate.Format(ledger.DateLayout)
	}

	return view
}
