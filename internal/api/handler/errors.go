package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/invoicing-dashboard/internal/domain"
	"github.com/vfg2006/invoicing-dashboard/pkg/apiErrors"
)

// writeQueryError answers a failed read: 404 when the row does not exist,
// 500 with the operation message otherwise.
func writeQueryError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
}
