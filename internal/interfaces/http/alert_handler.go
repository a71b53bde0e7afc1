package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/grocerybag/grocerybag-api/internal/application/dto"
	"github.com/grocerybag/grocerybag-api/internal/application/ledger"
	"github.com/grocerybag/grocerybag-api/internal/domain"
)

// AlertHandler maneja las peticiones HTTP de alertas (protegido).
type AlertHandler struct {
	uc *ledger.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *ledger.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List GET /api/alerts?unresolved=true&limit=20&offset=0
func (h *AlertHandler) List(c *fiber.Ctx) error {
	onlyUnresolved := c.QueryBool("unresolved", false)
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(c.Context(), onlyUnresolved, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Resolve PUT /api/alerts/:id/resolve
func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.uc.Resolve(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ALERT_NOT_FOUND", Message: "alerta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
