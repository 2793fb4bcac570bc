package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice is a row of the invoices table. Amount is in minor units (cents).
type Invoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	Date       time.Time     `json:"date"`
}

// InvoiceForm is an invoice shaped for the edit form, with Amount in major units.
type InvoiceForm struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Amount     float64       `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	Date       time.Time     `json:"date"`
}

// LatestInvoice is an invoice joined with the customer that owns it.
type LatestInvoice struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// InvoiceTableRow is a row of the filtered invoices table.
type InvoiceTableRow struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	ImageURL   string        `json:"image_url"`
	Date       time.Time     `json:"date"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
}

// InvoiceStatusTotals holds the conditional sums of invoice amounts, in cents.
type InvoiceStatusTotals struct {
	Paid    int64
	Pending int64
}

// InvoiceFilter is the search applied to the invoices table. Query is matched
// case-insensitively as a substring; a zero Limit means no limit.
type InvoiceFilter struct {
	Query  string
	Limit  uint64
	Offset uint64
}
