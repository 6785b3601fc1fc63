package bills

import (
	"context"

	"encore.dev/rlog"
)

type ListBillsRequest struct {
	Page int    `query:"page"`
	Size int    `query:"size"`
	Sort string `query:"sort"`
}

type ListBillsResponse struct {
	Content       []BillView `json:"content"`
	Number        int        `json:"number"`
	Size          int        `json:"size"`
	TotalElements int64      `json:"total_elements"`
	TotalPages    int        `json:"total_pages"`
}

//encore:api public path=/v1/bills method=GET
func (s *Service) ListBills(ctx context.Context, req *ListBillsRequest) (*ListBillsResponse, error) {
	if req.Page < 0 {
		req.Page = 0
	}
	if req.Size <= 0 {
		req.Size = 10
	}
	if req.Size > 100 {
		req.Size = 100
	}

	billList, totalCount, err := s.business.ListBills(ctx, req.Page, req.Size, req.Sort)
	if err != nil {
		rlog.Error("failed to list bills", "error", err)
		return nil, err
	}

	response := &ListBillsResponse{
		Content:       make([]BillView, len(billList)),
		Number:        req.Page,
		Size:          req.Size,
		TotalElements: totalCount,
		TotalPages:    int((totalCount + int64(req.Size) - 1) / int64(req.Size)),
	}

	for i, bill := range billList {
		response.Content[i] = newBillView(bill)
	}

	return response, nil
}
