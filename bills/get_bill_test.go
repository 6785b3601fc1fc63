package bills

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/bills/mocks/business/bill_business"
	"encore.app/bills/model"
)

func TestGetBill(t *testing.T) {
	testCases := []struct {
		name              string
		billID            int64
		mockGetBillReturn *model.Bill
		mockGetBillError  error
		expectedError     string
		expectGetBillCall bool
	}{
		{
			name:              "successful_retrieval",
			billID:            1,
			expectGetBillCall: true,
		},
		{
			name:          "invalid_bill_id_zero",
			billID:        0,
			expectedError: "invalid bill ID",
		},
		{
			name:          "invalid_bill_id_negative",
			billID:        -5,
			expectedError: "invalid bill ID",
		},
		{
			name:              "bill_not_found",
			billID:            999,
			mockGetBillError:  &errs.Error{Code: errs.NotFound, Message: "bill not found"},
			expectedError:     "bill not found",
			expectGetBillCall: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := bill_business.NewMockBusiness(ctrl)
			service := &Service{business: mockBusiness}

			if tc.expectGetBillCall {
				found := modelBill(t, tc.billID, "2024-06-01", "2024-06-05", "100.00", "Utility Bill", "paid")
				if tc.mockGetBillError != nil {
					found = nil
				}
				mockBusiness.EXPECT().
					GetBill(gomock.Any(), tc.billID).
					Return(found, tc.mockGetBillError)
			}

			resp, err := service.GetBill(context.Background(), tc.billID)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, resp)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.billID, resp.Bill.ID)
			assert.Equal(t, "2024-06-01", resp.Bill.DueDate)
		})
	}
}
