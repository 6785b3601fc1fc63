package bills

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/bills/mocks/business/bill_business"
)

func TestUpdateBillStatus(t *testing.T) {
	testCases := []struct {
		name             string
		billID           int64
		status           string
		mockUpdateError  error
		expectedError    string
		expectUpdateCall bool
	}{
		{
			name:             "successful_status_change",
			billID:           5,
			status:           "paid",
			expectUpdateCall: true,
		},
		{
			name:          "invalid_bill_id",
			billID:        -1,
			status:        "paid",
			expectedError: "invalid bill ID",
		},
		{
			name:             "bill_not_found",
			billID:           999,
			status:           "paid",
			mockUpdateError:  &errs.Error{Code: errs.NotFound, Message: "bill not found"},
			expectedError:    "bill not found",
			expectUpdateCall: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := bill_business.NewMockBusiness(ctrl)
			service := &Service{business: mockBusiness}

			if tc.expectUpdateCall {
				mockBusiness.EXPECT().
					UpdateBillStatus(gomock.Any(), tc.billID, tc.status).
					Return(tc.mockUpdateError)
			}

			err := service.UpdateBillStatus(context.Background(), tc.billID, &UpdateStatusRequest{Status: tc.status})

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestUpdateStatusRequestValidate(t *testing.T) {
	assert.NoError(t, (&UpdateStatusRequest{Status: "paid"}).Validate())
	assert.Error(t, (&UpdateStatusRequest{}).Validate())
}
