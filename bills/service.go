package bills

import (
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/storage/sqldb"

	"encore.app/bills/business/bill"
	billstore "encore.app/bills/store/bills"
)

var billsDB = sqldb.NewDatabase("bills", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

//encore:service
type Service struct {
	business bill.Business
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](billsDB)

	repo := billstore.New(pgxdb)

	return &Service{
		business: bill.NewBillBusiness(repo),
	}, nil
}
