package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/promoplaza/promo-api/internal/api/metrics"
	"github.com/promoplaza/promo-api/internal/core/domain"
	"github.com/promoplaza/promo-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Faltan campos obligatorios"})
	}

	_, err := h.authService.Register(c.Request().Context(), req.displayName(), req.Email, req.Password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Faltan campos obligatorios"})
		case errors.Is(err, domain.ErrEmailTaken):
			// The original API used 400 for duplicates, not 409; clients
			// depend on it.
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "El email ya está registrado"})
		default:
			zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("register failed")
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Error al registrar usuario"})
		}
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Usuario registrado correctamente"})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Faltan campos"})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Faltan campos"})
		case errors.Is(err, domain.ErrUserNotFound):
			// Distinguishing "unknown user" from "wrong password" leaks
			// account existence; kept as-is for client compatibility.
			metrics.LoginsTotal.WithLabelValues("unknown_user").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Usuario no encontrado"})
		case errors.Is(err, domain.ErrWrongPassword):
			metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Contraseña incorrecta"})
		default:
			zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("login failed")
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Error de servidor"})
		}
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login exitoso",
		Token:   result.Token,
		Email:   result.Email,
	})
}
