package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/account-service/internal/core/domain"
)

func recordError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestHTTPErrorHandler_Taxonomy(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
		{"authentication failed", domain.ErrAuthenticationFailed, http.StatusUnauthorized},
		{"registration conflict", domain.ErrRegistrationConflict, http.StatusConflict},
		{"duplicate identity", domain.ErrDuplicateIdentity, http.StatusConflict},
		{"token malformed", domain.ErrTokenMalformed, http.StatusUnauthorized},
		{"token expired", domain.ErrTokenExpired, http.StatusUnauthorized},
		{"token signature invalid", domain.ErrTokenSignatureInvalid, http.StatusUnauthorized},
		{"identity not found", domain.ErrIdentityNotFound, http.StatusUnauthorized},
		{"store unavailable", domain.ErrStoreUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := recordError(t, fmt.Errorf("op failed: %w", tc.err))
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
		})
	}
}

func TestHTTPErrorHandler_TokenFaultsAreUniform(t *testing.T) {
	bodies := make(map[string]struct{})
	for _, err := range []error{domain.ErrTokenMalformed, domain.ErrTokenExpired, domain.ErrTokenSignatureInvalid} {
		rec := recordError(t, err)
		bodies[strings.TrimSpace(rec.Body.String())] = struct{}{}
	}
	if len(bodies) != 1 {
		t.Fatalf("token faults must render identically, got %v", bodies)
	}
}

func TestHTTPErrorHandler_DoesNotLeakStoreDetail(t *testing.T) {
	rec := recordError(t, fmt.Errorf("insert user: connection refused 10.0.0.3:27017: %w", domain.ErrStoreUnavailable))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "27017") || strings.Contains(rec.Body.String(), "connection refused") {
		t.Fatalf("driver detail leaked to the client: %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_Unexpected(t *testing.T) {
	rec := recordError(t, fmt.Errorf("something odd"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Fatalf("expected generic message, got %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	rec := recordError(t, echo.NewHTTPError(http.StatusNotFound, "user not found"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
