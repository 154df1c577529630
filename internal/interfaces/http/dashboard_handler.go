package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tmercier/gestion-locative-api/internal/application/analytics"
)

// DashboardHandler gère la requête du tableau de bord.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construit le handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Tableau de bord du mois en cours
// @Description  Revenus mensuels attendus, total perçu, loyers en retard,
// @Description  locataires actifs et parc avec locataire actuel.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
