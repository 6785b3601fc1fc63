package bill

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/bills/mocks/store/bill_store"
	"encore.app/bills/model"
	"encore.app/bills/store/bills"
)

func TestCreateBill(t *testing.T) {
	testCases := []struct {
		name            string
		mockCreateError error
		expectedError   string
	}{
		{
			name: "happy_case",
		},
		{
			name:            "not_null_violation_is_a_client_error",
			mockCreateError: &pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "amount"},
			expectedError:   "bill violates a storage constraint: amount",
		},
		{
			name:            "check_violation_is_a_client_error",
			mockCreateError: &pgconn.PgError{Code: pgerrcode.CheckViolation, ColumnName: "due_date"},
			expectedError:   "bill violates a storage constraint: due_date",
		},
		{
			name:            "database_error",
			mockCreateError: errors.New("connection refused"),
			expectedError:   "failed to create bill",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := bill_store.NewMockQuerier(ctrl)
			b := NewBillBusiness(mockRepo)

			paid := testDate(t, "2024-06-05")
			input := &model.Bill{
				DueDate:     testDate(t, "2024-06-01"),
				PaidDate:    &paid,
				Amount:      decimal.RequireFromString("100.00"),
				Description: "Utility Bill",
				Status:      model.StatusPaid,
			}

			expectedParams := bills.CreateBillParams{
				DueDate:     pgtype.Date{Time: input.DueDate, Valid: true},
				PaidDate:    pgtype.Date{Time: paid, Valid: true},
				Amount:      testNumeric(t, "100.00"),
				Description: "Utility Bill",
				Status:      "paid",
			}

			if tc.mockCreateError != nil {
				mockRepo.EXPECT().
					CreateBill(gomock.Any(), expectedParams).
					Return(bills.Bill{}, tc.mockCreateError)
			} else {
				mockRepo.EXPECT().
					CreateBill(gomock.Any(), expectedParams).
					Return(dbBill(t, 1, "2024-06-01", "2024-06-05", "100.00", "Utility Bill", "paid"), nil)
			}

			result, err := b.CreateBill(context.Background(), input)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(1), result.ID)
			assert.Equal(t, input.DueDate, result.DueDate)
			if assert.NotNil(t, result.PaidDate) {
				assert.Equal(t, paid, *result.PaidDate)
			}
			assert.True(t, result.Amount.Equal(input.Amount))
			assert.Equal(t, "Utility Bill", result.Description)
			assert.Equal(t, "paid", result.Status)
		})
	}
}

func TestCreateBillWithoutPaidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bill_store.NewMockQuerier(ctrl)
	b := NewBillBusiness(mockRepo)

	input := &model.Bill{
		DueDate:     testDate(t, "2024-08-01"),
		Amount:      decimal.RequireFromString("42.50"),
		Description: "Water",
		Status:      model.StatusPending,
	}

	mockRepo.EXPECT().
		CreateBill(gomock.Any(), bills.CreateBillParams{
			DueDate:     pgtype.Date{Time: input.DueDate, Valid: true},
			PaidDate:    pgtype.Date{},
			Amount:      testNumeric(t, "42.50"),
			Description: "Water",
			Status:      "pending",
		}).
		Return(dbBill(t, 3, "2024-08-01", "", "42.50", "Water", "pending"), nil)

	result, err := b.CreateBill(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), result.ID)
	assert.Nil(t, result.PaidDate)
}
