package handler

import (
	"mime"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/cast"
	"github.com/vfg2006/invoicing-dashboard/internal/domain"
	"github.com/vfg2006/invoicing-dashboard/internal/navigation"
	"github.com/vfg2006/invoicing-dashboard/internal/usecases/invoicing"
	"github.com/vfg2006/invoicing-dashboard/internal/usecases/reporting"
	"github.com/vfg2006/invoicing-dashboard/pkg/apiErrors"
	"github.com/vfg2006/invoicing-dashboard/pkg/log"
)

type InvoicesPagesResponse struct {
	TotalPages int64 `json:"total_pages"`
}

func ListInvoices(service reporting.Reporter, views ViewVersioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		page := cast.ToInt(r.URL.Query().Get("page"))

		invoices, err := service.FetchFilteredInvoices(r.Context(), query, page)
		if err != nil {
			writeQueryError(w, err)
			return
		}

		setViewVersion(w, views, invoicing.InvoicesPath)
		writeJSON(w, r, http.StatusOK, invoices)
	}
}

func GetInvoicesPages(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pages, err := service.FetchInvoicesPages(r.Context(), r.URL.Query().Get("query"))
		if err != nil {
			writeQueryError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, InvoicesPagesResponse{TotalPages: pages})
	}
}

func GetInvoice(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		invoice, err := service.FetchInvoiceByID(r.Context(), id)
		if err != nil {
			writeQueryError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, invoice)
	}
}

func CreateInvoice(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := readForm(w, r)
		if !ok {
			return
		}

		state, err := service.CreateInvoice(r.Context(), nil, form)
		writeMutationResult(w, r, state, err)
	}
}

func UpdateInvoice(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, ok := readForm(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		state, err := service.UpdateInvoice(r.Context(), id, form)
		writeMutationResult(w, r, state, err)
	}
}

func DeleteInvoice(service invoicing.Invoicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		state, err := service.DeleteInvoice(r.Context(), id)
		writeMutationResult(w, r, state, err)
	}
}

// readForm accepts either a urlencoded/multipart form or a flat JSON object.
func readForm(w http.ResponseWriter, r *http.Request) (map[string]string, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/json" {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return nil, false
		}

		form := make(map[string]string, len(body))
		for key, value := range body {
			form[key] = cast.ToString(value)
		}
		return form, true
	}

	if err := r.ParseMultipartForm(1 << 20); err != nil && err != http.ErrNotMultipart {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid form body", nil)
		return nil, false
	}

	form := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		form[key] = r.PostForm.Get(key)
	}
	return form, true
}

// writeMutationResult maps the outcome of a mutation: a redirect becomes a
// 303, field errors a 422, any other state a 500 and no state at all a 204.
func writeMutationResult(w http.ResponseWriter, r *http.Request, state *domain.FormState, err error) {
	if redirect, ok := navigation.AsRedirect(err); ok {
		http.Redirect(w, r, redirect.Path, http.StatusSeeOther)
		return
	}

	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("unexpected mutation error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
		return
	}

	switch {
	case state == nil:
		w.WriteHeader(http.StatusNoContent)
	case state.HasFieldErrors():
		writeJSON(w, r, http.StatusUnprocessableEntity, state)
	default:
		writeJSON(w, r, http.StatusInternalServerError, state)
	}
}
