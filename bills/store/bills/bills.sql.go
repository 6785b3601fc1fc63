package bills

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

const createBill = `
INSERT INTO bills (due_date, paid_date, amount, description, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, due_date, paid_date, amount, description, status
`

type CreateBillParams struct {
	DueDate     pgtype.Date
	PaidDate    pgtype.Date
	Amount      pgtype.Numeric
	Description string
	Status      string
}

func (q *Queries) CreateBill(ctx context.Context, arg CreateBillParams) (Bill, error) {
	row := q.db.QueryRow(ctx, createBill,
		arg.DueDate,
		arg.PaidDate,
		arg.Amount,
		arg.Description,
		arg.Status,
	)
	var i Bill
	err := row.Scan(&i.ID, &i.DueDate, &i.PaidDate, &i.Amount, &i.Description, &i.Status)
	return i, err
}

const createBills = `
INSERT INTO bills (due_date, paid_date, amount, description, status)
SELECT * FROM unnest(
	$1::date[],
	$2::date[],
	$3::numeric[],
	$4::text[],
	$5::text[]
)
RETURNING id, due_date, paid_date, amount, description, status
`

type CreateBillsParams struct {
	DueDates     []pgtype.Date
	PaidDates    []pgtype.Date
	Amounts      []pgtype.Numeric
	Descriptions []string
	Statuses     []string
}

// CreateBills persists the batch with a single multi-row INSERT, so the
// save is atomic without explicit transaction management. Rows come back
// in input order with their assigned ids.
func (q *Queries) CreateBills(ctx context.Context, arg CreateBillsParams) ([]Bill, error) {
	rows, err := q.db.Query(ctx, createBills,
		arg.DueDates,
		arg.PaidDates,
		arg.Amounts,
		arg.Descriptions,
		arg.Statuses,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Bill
	for rows.Next() {
		var i Bill
		if err := rows.Scan(&i.ID, &i.DueDate, &i.PaidDate, &i.Amount, &i.Description, &i.Status); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getBill = `
SELECT id, due_date, paid_date, amount, description, status
FROM bills
WHERE id = $1
`

func (q *Queries) GetBill(ctx context.Context, id int64) (Bill, error) {
	row := q.db.QueryRow(ctx, getBill, id)
	var i Bill
	err := row.Scan(&i.ID, &i.DueDate, &i.PaidDate, &i.Amount, &i.Description, &i.Status)
	return i, err
}

const updateBill = `
UPDATE bills
SET due_date = $2, paid_date = $3, amount = $4, description = $5, status = $6
WHERE id = $1
RETURNING id, due_date, paid_date, amount, description, status
`

type UpdateBillParams struct {
	ID          int64
	DueDate     pgtype.Date
	PaidDate    pgtype.Date
	Amount      pgtype.Numeric
	Description string
	Status      string
}

func (q *Queries) UpdateBill(ctx context.Context, arg UpdateBillParams) (Bill, error) {
	row := q.db.QueryRow(ctx, updateBill,
		arg.ID,
		arg.DueDate,
		arg.PaidDate,
		arg.Amount,
		arg.Description,
		arg.Status,
	)
	var i Bill
	err := row.Scan(&i.ID, &i.DueDate, &i.PaidDate, &i.Amount, &i.Description, &i.Status)
	return i, err
}

const updateBillStatus = `
UPDATE bills
SET status = $2
WHERE id = $1
RETURNING id, due_date, paid_date, amount, description, status
`

type UpdateBillStatusParams struct {
	ID     int64
	Status string
}

func (q *Queries) UpdateBillStatus(ctx context.Context, arg UpdateBillStatusParams) (Bill, error) {
	row := q.db.QueryRow(ctx, updateBillStatus, arg.ID, arg.Status)
	var i Bill
	err := row.Scan(&i.ID, &i.DueDate, &i.PaidDate, &i.Amount, &i.Description, &i.Status)
	return i, err
}

const listBills = `
SELECT id, due_date, paid_date, amount, description, status
FROM bills
ORDER BY %s
LIMIT $1 OFFSET $2
`

type ListBillsParams struct {
	Limit  int32
	Offset int64
	Sort   string
}

// sortColumns whitelists ORDER BY targets; the sort key arrives from the
// caller verbatim and must never be interpolated unchecked.
var sortColumns = map[string]string{
	"id":          "id",
	"due_date":    "due_date",
	"paid_date":   "paid_date",
	"amount":      "amount",
	"description": "description",
	"status":      "status",
}

func (q *Queries) ListBills(ctx context.Context, arg ListBillsParams) ([]Bill, error) {
	col, ok := sortColumns[arg.Sort]
	if !ok {
		col = "id"
	}
	rows, err := q.db.Query(ctx, fmt.Sprintf(listBills, col), arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Bill
	for rows.Next() {
		var i Bill
		if err := rows.Scan(&i.ID, &i.DueDate, &i.PaidDate, &i.Amount, &i.Description, &i.Status); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listAllBills = `
SELECT id, due_date, paid_date, amount, description, status
FROM bills
ORDER BY id
`

func (q *Queries) ListAllBills(ctx context.Context) ([]Bill, error) {
	rows, err := q.db.Query(ctx, listAllBills)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Bill
	for rows.Next() {
		var i Bill
		if err := rows.Scan(&i.ID, &i.DueDate, &i.PaidDate, &i.Amount, &i.Description, &i.Status); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countBills = `
SELECT count(*) FROM bills
`

func (q *Queries) CountBills(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countBills)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const sumPaidBetween = `
SELECT COALESCE(SUM(amount), 0)
FROM bills
WHERE paid_date BETWEEN $1 AND $2
`

type SumPaidBetweenParams struct {
	StartDate pgtype.Date
	EndDate   pgtype.Date
}

func (q *Queries) SumPaidBetween(ctx context.Context, arg SumPaidBetweenParams) (pgtype.Numeric, error) {
	row := q.db.QueryRow(ctx, sumPaidBetween, arg.StartDate, arg.EndDate)
	var total pgtype.Numeric
	err := row.Scan(&total)
	return total, err
}
