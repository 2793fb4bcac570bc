package domain

type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// CustomerTableRow is a customer with the aggregates of its invoices. Totals are in cents.
type CustomerTableRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  int64  `json:"total_pending"`
	TotalPaid     int64  `json:"total_paid"`
}

// CustomerFilter is the search applied to the customers table. A zero Limit
// means no limit.
type CustomerFilter struct {
	Query  string
	Limit  uint64
	Offset uint64
}
