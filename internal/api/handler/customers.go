package handler

import (
	"net/http"

	"github.com/spf13/cast"
	"github.com/vfg2006/invoicing-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/invoicing-dashboard/pkg/money"
)

const CustomersPath = "/dashboard/customers"

type CustomerTableResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

func ListCustomers(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := service.FetchCustomers(r.Context())
		if err != nil {
			writeQueryError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, customers)
	}
}

func GetCustomersTable(service reporting.Reporter, views ViewVersioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		page := cast.ToInt(r.URL.Query().Get("page"))

		customers, err := service.FetchFilteredCustomers(r.Context(), query, page)
		if err != nil {
			writeQueryError(w, err)
			return
		}

		response := make([]CustomerTableResponse, 0, len(customers))
		for _, customer := range customers {
			response = append(response, CustomerTableResponse{
				ID:            customer.ID,
				Name:          customer.Name,
				Email:         customer.Email,
				ImageURL:      customer.ImageURL,
				TotalInvoices: customer.TotalInvoices,
				TotalPending:  money.FormatCurrency(customer.TotalPending),
				TotalPaid:     money.FormatCurrency(customer.TotalPaid),
			})
		}

		setViewVersion(w, views, CustomersPath)
		writeJSON(w, r, http.StatusOK, response)
	}
}
