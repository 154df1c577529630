package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tmercier/gestion-locative-api/internal/application/analytics"
)

// StatistiquesHandler gère la requête de la page statistiques.
type StatistiquesHandler struct {
	uc *analytics.StatistiquesUseCase
}

// NewStatistiquesHandler construit le handler.
func NewStatistiquesHandler(uc *analytics.StatistiquesUseCase) *StatistiquesHandler {
	return &StatistiquesHandler{uc: uc}
}

// GetStatistiques godoc
// @Summary      Statistiques des revenus
// @Description  Série des revenus des 12 derniers mois (zéro pour les mois
// @Description  sans paiement) et total perçu par bien.
// @Tags         statistiques
// @Produce      json
// @Success      200  {object}  dto.StatistiquesResponse
// @Router       /api/statistiques [get]
func (h *StatistiquesHandler) GetStatistiques(c *fiber.Ctx) error {
	out, err := h.uc.GetStatistiques(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
