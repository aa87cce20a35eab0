package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/promoplaza/promo-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{domain.ErrMissingFields, http.StatusBadRequest, "Faltan campos obligatorios"},
		{domain.ErrEmailTaken, http.StatusBadRequest, "El email ya está registrado"},
		{domain.ErrUserNotFound, http.StatusUnauthorized, "Usuario no encontrado"},
		{domain.ErrWrongPassword, http.StatusUnauthorized, "Contraseña incorrecta"},
		{domain.ErrForbidden, http.StatusForbidden, "Acceso solo para administradores"},
		{domain.ErrPromotionNotFound, http.StatusNotFound, "Promoción no encontrada"},
	}

	for _, tc := range cases {
		rec, body := renderError(t, tc.err)
		if rec.Code != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, rec.Code)
		}
		if body["error"] != tc.msg {
			t.Fatalf("%v: expected %q, got %q", tc.err, tc.msg, body["error"])
		}
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "Token inválido"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body["error"] != "Token inválido" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	rec, body := renderError(t, errors.New("connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "Error de servidor" {
		t.Fatalf("expected generic message, got %q", body["error"])
	}
}
