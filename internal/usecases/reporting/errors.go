package reporting

// Messages reported to callers when a read fails. The cause stays available
// through errors.Unwrap.
const (
	MessageFetchRevenue           = "Failed to fetch revenue data."
	MessageFetchLatestInvoices    = "Failed to fetch the latest invoices."
	MessageFetchCardData          = "Failed to fetch card data."
	MessageFetchInvoices          = "Failed to fetch invoices."
	MessageFetchInvoicesPages     = "Failed to fetch total number of invoices."
	MessageFetchInvoice           = "Failed to fetch invoice."
	MessageFetchCustomers         = "Failed to fetch all customers."
	MessageFetchFilteredCustomers = "Failed to fetch customers table."
)

// QueryError is returned by every failed read. Error is the user-facing
// message; the storage error is kept as the cause.
type QueryError struct {
	Operation string
	Message   string
	Err       error
}

func (e *QueryError) Error() string {
	return e.Message
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
