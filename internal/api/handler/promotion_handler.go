package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/promoplaza/promo-api/internal/api/metrics"
	"github.com/promoplaza/promo-api/internal/core/domain"
	"github.com/promoplaza/promo-api/internal/core/ports"
)

// PromotionHandler handles HTTP requests for promotion operations. Reads are
// public; writes sit behind the Auth and Admin middleware.
type PromotionHandler struct {
	service ports.PromotionService
}

func NewPromotionHandler(service ports.PromotionService) *PromotionHandler {
	return &PromotionHandler{service: service}
}

// List handles GET /api/promociones. No pagination: the table is small and the
// frontend renders it whole.
//
// @Summary      List all promotions
// @Tags         promotions
// @Produce      json
// @Success      200  {array}   domain.Promotion
// @Failure      500  {object}  errorResponse
// @Router       /api/promociones [get]
func (h *PromotionHandler) List(c echo.Context) error {
	promos, err := h.service.List(c.Request().Context())
	if err != nil {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("list promotions failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Error al obtener promociones"})
	}
	return c.JSON(http.StatusOK, promos)
}

// Create handles POST /api/promociones (admin only).
//
// @Summary      Create a promotion
// @Tags         promotions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      promotionRequest  true  "Promotion fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/promociones [post]
func (h *PromotionHandler) Create(c echo.Context) error {
	req, err := bindPromotion(c)
	if err != nil {
		return err
	}

	_, err = h.service.Create(c.Request().Context(), req)
	metrics.PromotionWritesTotal.WithLabelValues("create", writeResult(err)).Inc()
	if err != nil {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("create promotion failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Error al crear la promoción"})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Promoción creada correctamente"})
}

// Update handles PUT /api/promociones/:id (admin only). Full-row replace.
//
// @Summary      Update a promotion
// @Tags         promotions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Promotion id"
// @Param        body  body      promotionRequest  true  "Promotion fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/promociones/{id} [put]
func (h *PromotionHandler) Update(c echo.Context) error {
	id, err := promotionID(c)
	if err != nil {
		return err
	}
	req, err := bindPromotion(c)
	if err != nil {
		return err
	}

	err = h.service.Update(c.Request().Context(), id, req)
	metrics.PromotionWritesTotal.WithLabelValues("update", writeResult(err)).Inc()
	if err != nil {
		if errors.Is(err, domain.ErrPromotionNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Promoción no encontrada"})
		}
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("update promotion failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Error al actualizar la promoción"})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Promoción actualizada correctamente"})
}

// Delete handles DELETE /api/promociones/:id (admin only).
//
// @Summary      Delete a promotion
// @Tags         promotions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Promotion id"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/promociones/{id} [delete]
func (h *PromotionHandler) Delete(c echo.Context) error {
	id, err := promotionID(c)
	if err != nil {
		return err
	}

	err = h.service.Delete(c.Request().Context(), id)
	metrics.PromotionWritesTotal.WithLabelValues("delete", writeResult(err)).Inc()
	if err != nil {
		if errors.Is(err, domain.ErrPromotionNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Promoción no encontrada"})
		}
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("delete promotion failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Error al eliminar la promoción"})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Promoción eliminada correctamente"})
}

// bindPromotion decodes and validates the promotion payload. Failures surface
// as echo.HTTPError so the central error handler renders the envelope.
func bindPromotion(c echo.Context) (ports.PromotionInput, error) {
	var req promotionRequest
	if err := c.Bind(&req); err != nil {
		return ports.PromotionInput{}, echo.NewHTTPError(http.StatusBadRequest, "Datos inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return ports.PromotionInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ports.PromotionInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
	}, nil
}

func promotionID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Identificador inválido")
	}
	return id, nil
}

func writeResult(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
