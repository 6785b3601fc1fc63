package bills

import (
	"fmt"
	"net/http"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

// ExportBills streams every bill as a CSV ledger, in the same format
// ImportBills accepts.
//
//encore:api public raw path=/v1/exports/bills method=GET
func (s *Service) ExportBills(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "bills_"+time.Now().Format("20060102")+".csv"))

	if err := s.business.ExportBills(req.Context(), w); err != nil {
		rlog.Error("failed to export bills", "error", err)
		errs.HTTPError(w, err)
		return
	}
}
