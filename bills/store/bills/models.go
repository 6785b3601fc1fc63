package bills

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Bill mirrors one row of the bills table. Amount is NUMERIC; callers
// convert to an exact decimal at the business layer.
type Bill struct {
	ID          int64
	DueDate     pgtype.Date
	PaidDate    pgtype.Date
	Amount      pgtype.Numeric
	Description string
	Status      string
}
