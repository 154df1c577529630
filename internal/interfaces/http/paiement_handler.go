package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tmercier/gestion-locative-api/internal/application/dto"
	"github.com/tmercier/gestion-locative-api/internal/application/usecase"
)

// PaiementHandler gère les requêtes HTTP des paiements.
type PaiementHandler struct {
	uc *usecase.PaiementUseCase
}

// NewPaiementHandler construit le handler.
func NewPaiementHandler(uc *usecase.PaiementUseCase) *PaiementHandler {
	return &PaiementHandler{uc: uc}
}

// Create godoc
// @Summary      Enregistrer un paiement
// @Tags         paiements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaiementRequest  true  "Données du paiement"
// @Success      201   {object}  dto.PaiementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/paiements [post]
func (h *PaiementHandler) Create(c *fiber.Ctx) error {
	var in dto.PaiementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtenir un paiement
// @Tags         paiements
// @Produce      json
// @Param        id   path  string  true  "ID du paiement"
// @Success      200  {object}  dto.PaiementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/paiements/{id} [get]
func (h *PaiementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les paiements, du plus récent au plus ancien
// @Tags         paiements
// @Produce      json
// @Param        mois  query  string  false  "Restreindre à un mois concerné (AAAA-MM)"
// @Success      200   {array}  dto.PaiementResponse
// @Router       /api/paiements [get]
func (h *PaiementHandler) List(c *fiber.Ctx) error {
	if mois := c.Query("mois"); mois != "" {
		out, err := h.uc.ListByMois(mois)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un paiement
// @Tags         paiements
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID du paiement"
// @Param        body  body  dto.PaiementRequest  true  "Données du paiement"
// @Success      200   {object}  dto.PaiementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/paiements/{id} [put]
func (h *PaiementHandler) Update(c *fiber.Ctx) error {
	var in dto.PaiementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un paiement
// @Tags         paiements
// @Produce      json
// @Param        id   path  string  true  "ID du paiement"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/paiements/{id} [delete]
func (h *PaiementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Paiement supprimé."})
}

// Categories godoc
// @Summary      Référentiel des catégories de paiement
// @Tags         paiements
// @Produce      json
// @Success      200  {array}  dto.CategorieResponse
// @Router       /api/paiements/categories [get]
func (h *PaiementHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.uc.Categories())
}
