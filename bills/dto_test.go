package bills

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"encore.app/bills/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func modelBill(t *testing.T, id int64, dueDate, paidDate, amount, description, status string) *model.Bill {
	t.Helper()
	b := &model.Bill{
		ID:          id,
		DueDate:     mustDate(t, dueDate),
		Amount:      decimal.RequireFromString(amount),
		Description: description,
		Status:      status,
	}
	if paidDate != "" {
		paid := mustDate(t, paidDate)
		b.PaidDate = &paid
	}
	return b
}

func validPayload() *BillPayload {
	return &BillPayload{
		DueDate:     "2024-06-01",
		PaidDate:    "2024-06-05",
		Amount:      decimal.RequireFromString("100.00"),
		Description: "Utility Bill",
		Status:      "paid",
	}
}

func TestBillPayloadValidate(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(*BillPayload)
		expectError bool
	}{
		{
			name:   "valid_payload",
			mutate: func(p *BillPayload) {},
		},
		{
			name:   "paid_date_is_optional",
			mutate: func(p *BillPayload) { p.PaidDate = "" },
		},
		{
			name:        "missing_due_date",
			mutate:      func(p *BillPayload) { p.DueDate = "" },
			expectError: true,
		},
		{
			name:        "due_date_wrong_layout",
			mutate:      func(p *BillPayload) { p.DueDate = "01/06/2024" },
			expectError: true,
		},
		{
			name:        "paid_date_wrong_layout",
			mutate:      func(p *BillPayload) { p.PaidDate = "June 5th" },
			expectError: true,
		},
		{
			name:        "missing_amount",
			mutate:      func(p *BillPayload) { p.Amount = decimal.Decimal{} },
			expectError: true,
		},
		{
			name:        "missing_description",
			mutate:      func(p *BillPayload) { p.Description = "" },
			expectError: true,
		},
		{
			name:        "missing_status",
			mutate:      func(p *BillPayload) { p.Status = "" },
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validPayload()
			tc.mutate(payload)

			err := payload.Validate()

			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBillPayloadToModel(t *testing.T) {
	payload := validPayload()

	bill, err := payload.toModel()

	assert.NoError(t, err)
	assert.Equal(t, int64(0), bill.ID)
	assert.Equal(t, mustDate(t, "2024-06-01"), bill.DueDate)
	if assert.NotNil(t, bill.PaidDate) {
		assert.Equal(t, mustDate(t, "2024-06-05"), *bill.PaidDate)
	}
	assert.True(t, bill.Amount.Equal(payload.Amount))
	assert.Equal(t, "Utility Bill", bill.Description)
	assert.Equal(t, "paid", bill.Status)
}

func TestBillPayloadToModelWithoutPaidDate(t *testing.T) {
	payload := validPayload()
	payload.PaidDate = ""

	bill, err := payload.toModel()

	assert.NoError(t, err)
	assert.Nil(t, bill.PaidDate)
}

func TestNewBillView(t *testing.T) {
	bill := modelBill(t, 42, "2024-06-01", "2024-06-05", "100.00", "Utility Bill", "paid")

	view := newBillView(bill)

	assert.Equal(t, int64(42), view.ID)
	assert.Equal(t, "2024-06-01", view.DueDate)
	assert.Equal(t, "2024-06-05", view.PaidDate)
	assert.True(t, view.Amount.Equal(bill.Amount))
	assert.Equal(t, "Utility Bill", view.Description)
	assert.Equal(t, "paid", view.Status)
}

func TestViewRoundTripsPayload(t *testing.T) {
	payload := validPayload()

	bill, err := payload.toModel()
	assert.NoError(t, err)

	view := newBillView(bill)

	assert.Equal(t, payload.DueDate, view.DueDate)
	assert.Equal(t, payload.PaidDate, view.PaidDate)
	assert.True(t, view.Amount.Equal(payload.Amount))
	assert.Equal(t, payload.Description, view.Description)
	assert.Equal(t, payload.Status, view.Status)
}
