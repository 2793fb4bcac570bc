package domain

// CardData is the dashboard summary. Totals are in cents; formatting is left to the caller.
type CardData struct {
	NumberOfInvoices     int64
	NumberOfCustomers    int64
	TotalPaidInvoices    int64
	TotalPendingInvoices int64
}
