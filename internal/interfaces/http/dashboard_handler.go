package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/infostock-dashboard/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  Estatísticas, vendas por mês (8), produtos mais vendidos (5) y estoque baixo (10).
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return noSession(c)
	}
	summary, err := h.uc.GetSummary(c.Context(), sess.Backend)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
