package handler

import (
	"net/http"

	"github.com/vfg2006/invoicing-dashboard/internal/api/handler/router"
	"github.com/vfg2006/invoicing-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/invoicing-dashboard/internal/usecases/invoicing"
	"github.com/vfg2006/invoicing-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/invoicing-dashboard/pkg/middleware"
)

var noStore = []func(http.Handler) http.Handler{middleware.NoStore()}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Dashboard(service reporting.Reporter, views ViewVersioner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/revenue",
			Method:      http.MethodGet,
			Handler:     GetRevenue(service, views),
			Middlewares: noStore,
		},
		{
			Path:        "/v1/dashboard/latest-invoices",
			Method:      http.MethodGet,
			Handler:     GetLatestInvoices(service, views),
			Middlewares: noStore,
		},
		{
			Path:        "/v1/dashboard/cards",
			Method:      http.MethodGet,
			Handler:     GetCardData(service, views),
			Middlewares: noStore,
		},
	}
}

func Invoices(reporter reporting.Reporter, invoicer invoicing.Invoicer, views ViewVersioner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/invoices",
			Method:      http.MethodGet,
			Handler:     ListInvoices(reporter, views),
			Middlewares: noStore,
		},
		{
			Path:        "/v1/invoices-pages",
			Method:      http.MethodGet,
			Handler:     GetInvoicesPages(reporter),
			Middlewares: noStore,
		},
		{
			Path:        "/v1/invoices/:id",
			Method:      http.MethodGet,
			Handler:     GetInvoice(reporter),
			Middlewares: noStore,
		},
		{
			Path:    "/v1/invoices",
			Method:  http.MethodPost,
			Handler: CreateInvoice(invoicer),
		},
		{
			Path:    "/v1/invoices/:id",
			Method:  http.MethodPut,
			Handler: UpdateInvoice(invoicer),
		},
		{
			Path:    "/v1/invoices/:id",
			Method:  http.MethodDelete,
			Handler: DeleteInvoice(invoicer),
		},
	}
}

func Customers(service reporting.Reporter, views ViewVersioner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers",
			Method:      http.MethodGet,
			Handler:     ListCustomers(service),
			Middlewares: noStore,
		},
		{
			Path:        "/v1/customers/table",
			Method:      http.MethodGet,
			Handler:     GetCustomersTable(service, views),
			Middlewares: noStore,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: noStore,
		},
	}
}
