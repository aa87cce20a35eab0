package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/promoplaza/promo-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors: bind failures, 404/405 from the router, and the
	// HTTPErrors raised by the auth middleware and bind helpers.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. The duplicate-email
	// case is 400, not 409: the original API behaved that way and clients
	// depend on it.
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "Faltan campos obligatorios"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "El email ya está registrado"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, "Usuario no encontrado"
	case errors.Is(err, domain.ErrWrongPassword):
		return http.StatusUnauthorized, "Contraseña incorrecta"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Acceso solo para administradores"
	case errors.Is(err, domain.ErrPromotionNotFound):
		return http.StatusNotFound, "Promoción no encontrada"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Error de servidor"
}
