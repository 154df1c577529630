package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tmercier/gestion-locative-api/internal/application/dto"
	"github.com/tmercier/gestion-locative-api/internal/application/usecase"
)

// BailleurHandler gère les requêtes HTTP des paramètres du bailleur.
type BailleurHandler struct {
	uc *usecase.BailleurUseCase
}

// NewBailleurHandler construit le handler.
func NewBailleurHandler(uc *usecase.BailleurUseCase) *BailleurHandler {
	return &BailleurHandler{uc: uc}
}

// Get godoc
// @Summary      Obtenir les paramètres du bailleur
// @Tags         bailleur
// @Produce      json
// @Success      200  {object}  dto.BailleurResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bailleur [get]
func (h *BailleurHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Enregistrer les paramètres du bailleur (create-or-update)
// @Tags         bailleur
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BailleurRequest  true  "Paramètres du bailleur"
// @Success      200   {object}  dto.BailleurResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bailleur [put]
func (h *BailleurHandler) Save(c *fiber.Ctx) error {
	var in dto.BailleurRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Save(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
