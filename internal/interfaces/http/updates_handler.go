package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/grocerybag/grocerybag-api/internal/application/dto"
	"github.com/grocerybag/grocerybag-api/internal/application/ledger"
)

// UpdatesHandler expone el feed de cambios recientes para sincronización (protegido).
type UpdatesHandler struct {
	uc *ledger.UpdatesUseCase
}

// NewUpdatesHandler construye el handler.
func NewUpdatesHandler(uc *ledger.UpdatesUseCase) *UpdatesHandler {
	return &UpdatesHandler{uc: uc}
}

// Recent GET /api/updates?since=2026-01-02T15:04:05Z
// Sin since se devuelve todo el histórico (since = instante cero).
func (h *UpdatesHandler) Recent(c *fiber.Ctx) error {
	var since time.Time
	if raw := c.Query("since"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			since = parsed
		} else {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "since debe ser RFC3339 (ej. 2026-01-02T15:04:05Z)"})
		}
	}
	out, err := h.uc.Recent(c.Context(), since)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
