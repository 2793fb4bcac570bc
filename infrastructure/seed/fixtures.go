package seed

import (
	"time"

	"github.com/vfg2006/invoicing-dashboard/internal/domain"
)

// Fixtures is the data loaded by Seeder.Run. User passwords are plain text
// and hashed on insert.
type Fixtures struct {
	Users     []*domain.User
	Customers []*domain.Customer
	Invoices  []*domain.Invoice
	Revenue   []*domain.Revenue
}

func date(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultFixtures returns the data set the dashboard is demoed with.
func DefaultFixtures() Fixtures {
	const (
		delba   = "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"
		lee     = "3958dc9e-712f-4377-85e9-fec4b6a6442a"
		hector  = "3958dc9e-742f-4377-85e9-fec4b6a6442a"
		steven  = "76d65c26-f784-44a2-ac19-586678f7c2f2"
		steph   = "cc27c14a-0acf-4f4a-a6c9-d45682c144b9"
		michael = "13d07535-c59e-4157-a011-f8d2ef4e0cbb"
	)

	return Fixtures{
		Users: []*domain.User{
			{
				ID:       "410544b2-4001-4271-9855-fec4b6a6442a",
				Name:     "User",
				Email:    "user@nextmail.com",
				Password: "123456",
			},
		},
		Customers: []*domain.Customer{
			{ID: delba, Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
			{ID: lee, Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
			{ID: hector, Name: "Hector Simpson", Email: "hector@simpson.com", ImageURL: "/customers/hector-simpson.png"},
			{ID: steven, Name: "Steven Tey", Email: "steven@tey.com", ImageURL: "/customers/steven-tey.png"},
			{ID: steph, Name: "Steph Dietz", Email: "steph@dietz.com", ImageURL: "/customers/steph-dietz.png"},
			{ID: michael, Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
		},
		Invoices: []*domain.Invoice{
			{ID: "2e5a1a4c-1b8b-4f3b-9f1e-0a7f5c1a0b01", CustomerID: delba, Amount: 15795, Status: domain.InvoiceStatusPending, Date: date("2022-12-06")},
			{ID: "2e5a1a4c-1b8b-4f3b-9f1e-0a7f5c1a0b02", CustomerID: lee, Amount: 20348, Status: domain.InvoiceStatusPending, Date: date("2022-11-14")},
			{ID: "2e5a1a4c-1b8b-4f3b-9f1e-0a7f5c1a0b03", CustomerID: steph, Amount: 3040, Status: domain.InvoiceStatusPaid, Date: date("2022-10-29")},
			{ID: "2e5a1a4c-1b8b-4f3b-9f1e-0a7f5c1a0b04", CustomerID: michael, Amount: 44800, Status: domain.InvoiceStatusPaid, Date: date("2023-09-10")},
			{ID: "2e5a1a4c-1b8b-4f3b-9f1e-0a7f5c1a0b05", CustomerID: hector, Amount: 34577, Status: domain.InvoiceStatusPending, Date: date("2023-08-05")},
			{ID: "2e5a1a4c-1b8b-4f3b-9f1e-0a7f5c1a0b06", CustomerID: steven, Amount: 54246, Status: domain.InvoiceStatusPending, Date: date("2023-07-16")},
			{ID: "2e5a1a4c-1b8b-4f3b-9f1e-0a7f5c1a0b07", CustomerID: delba, Amount: 666, Status: domain.InvoiceStatusPending, Date: date("2023-06-27")},
			{ID: "2e5a1a4c-1b8b-4f3b-9f1e-0a7f5c1a0b08", CustomerID: michael, Amount: 32545, Status: domain.InvoiceStatusPaid, Date: date("2023-06-09")},
			{ID: "2e5a1a4c-1b8b-4f3b-9f1e-0a7f5c1a0b09", CustomerID: steph, Amount: 1250, Status: domain.InvoiceStatusPaid, Date: date("2023-06-17")},
			{ID: "2e5a1a4c-1b8b-4f3b-9f1e-0a7f5c1a0b10", CustomerID: steven, Amount: 8546, Status: domain.InvoiceStatusPaid, Date: date("2023-06-07")},
			{ID: "2e5a1a4c-1b8b-4f3b-9f1e-0a7f5c1a0b11", CustomerID: lee, Amount: 500, Status: domain.InvoiceStatusPaid, Date: date("2023-08-19")},
			{ID: "2e5a1a4c-1b8b-4f3b-9f1e-0a7f5c1a0b12", CustomerID: michael, Amount: 8945, Status: domain.InvoiceStatusPaid, Date: date("2023-06-03")},
			{ID: "2e5a1a4c-1b8b-4f3b-9f1e-0a7f5c1a0b13", CustomerID: hector, Amount: 32545, Status: domain.InvoiceStatusPaid, Date: date("2023-06-18")},
			{ID: "2e5a1a4c-1b8b-4f3b-9f1e-0a7f5c1a0b14", CustomerID: delba, Amount: 1000, Status: domain.InvoiceStatusPaid, Date: date("2022-06-05")},
		},
		Revenue: []*domain.Revenue{
			{Month: "Jan", Revenue: 2000},
			{Month: "Feb", Revenue: 1800},
			{Month: "Mar", Revenue: 2200},
			{Month: "Apr", Revenue: 2500},
			{Month: "May", Revenue: 2300},
			{Month: "Jun", Revenue: 3200},
			{Month: "Jul", Revenue: 3500},
			{Month: "Aug", Revenue: 3700},
			{Month: "Sep", Revenue: 2500},
			{Month: "Oct", Revenue: 2800},
			{Month: "Nov", Revenue: 3000},
			{Month: "Dec", Revenue: 4800},
		},
	}
}
