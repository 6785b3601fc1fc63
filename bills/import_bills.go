package bills

import (
	"net/http"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

// ImportBills accepts a multipart upload ("file" part) holding a CSV
// ledger and persists every row in one batch. A single malformed row
// rejects the whole upload; nothing is persisted on failure.
//
//encore:api public raw path=/v1/imports/bills method=POST
func (s *Service) ImportBills(w http.ResponseWriter, req *http.Request) {
	file, _, err := req.FormFile("file")
	if err != nil {
		errs.HTTPError(w, &errs.Error{Code: errs.InvalidArgument, Message: "missing file upload"})
		return
	}
	defer file.Close()

	imported, err := s.business.ImportBills(req.Context(), file)
	if err != nil {
		rlog.Error("failed to import bills", "error", err)
		errs.HTTPError(w, err)
		return
	}

	rlog.Info("imported bills", "count", len(imported))
	w.WriteHeader(http.StatusAccepted)
}
