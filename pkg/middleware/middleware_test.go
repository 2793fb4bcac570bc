package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/invoicing-dashboard/internal/domain"
)

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserID: "u1", UserEmail: "user@nextmail.com"}

	tests := []struct {
		name      string
		path      string
		header    string
		validator fakeValidator
		status    int
	}{
		{name: "public login", path: "/v1/login", status: http.StatusNoContent},
		{name: "public healthcheck", path: "/healthcheck", status: http.StatusNoContent},
		{name: "missing header", path: "/v1/invoices", status: http.StatusUnauthorized},
		{name: "not a bearer", path: "/v1/invoices", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "invalid token", path: "/v1/invoices", header: "Bearer abc", validator: fakeValidator{err: errors.New("bad")}, status: http.StatusUnauthorized},
		{name: "valid token", path: "/v1/invoices", header: "Bearer abc", validator: fakeValidator{claims: claims}, status: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.header != "" {
					user, ok := UserFromContext(r.Context())
					require.True(t, ok)
					assert.Equal(t, claims, user)
				}
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestNoStore(t *testing.T) {
	rec := httptest.NewRecorder()

	NoStore()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/invoices", nil))

	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestLogPanicMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()

	handler := LoggingMiddleware()(LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/invoices", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCors(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/v1/invoices", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	Cors()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
