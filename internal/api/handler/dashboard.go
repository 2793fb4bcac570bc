package handler

import (
	"net/http"

	"github.com/vfg2006/invoicing-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/invoicing-dashboard/pkg/money"
)

const DashboardPath = "/dashboard"

type LatestInvoiceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
}

type CardDataResponse struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

func GetRevenue(service reporting.Reporter, views ViewVersioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		revenue, err := service.FetchRevenue(r.Context())
		if err != nil {
			writeQueryError(w, err)
			return
		}

		setViewVersion(w, views, DashboardPath)
		writeJSON(w, r, http.StatusOK, revenue)
	}
}

func GetLatestInvoices(service reporting.Reporter, views ViewVersioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invoices, err := service.FetchLatestInvoices(r.Context())
		if err != nil {
			writeQueryError(w, err)
			return
		}

		response := make([]LatestInvoiceResponse, 0, len(invoices))
		for _, invoice := range invoices {
			response = append(response, LatestInvoiceResponse{
				ID:       invoice.ID,
				Name:     invoice.Name,
				Email:    invoice.Email,
				ImageURL: invoice.ImageURL,
				Amount:   money.FormatCurrency(invoice.Amount),
			})
		}

		setViewVersion(w, views, DashboardPath)
		writeJSON(w, r, http.StatusOK, response)
	}
}

func GetCardData(service reporting.Reporter, views ViewVersioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := service.FetchCardData(r.Context())
		if err != nil {
			writeQueryError(w, err)
			return
		}

		setViewVersion(w, views, DashboardPath)
		writeJSON(w, r, http.StatusOK, CardDataResponse{
			NumberOfInvoices:     cards.NumberOfInvoices,
			NumberOfCustomers:    cards.NumberOfCustomers,
			TotalPaidInvoices:    money.FormatCurrency(cards.TotalPaidInvoices),
			TotalPendingInvoices: money.FormatCurrency(cards.TotalPendingInvoices),
		})
	}
}
