package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tmercier/gestion-locative-api/internal/application/dto"
	"github.com/tmercier/gestion-locative-api/internal/application/usecase"
)

// LocataireHandler gère les requêtes HTTP des locataires.
type LocataireHandler struct {
	uc         *usecase.LocataireUseCase
	paiementUC *usecase.PaiementUseCase
}

// NewLocataireHandler construit le handler.
func NewLocataireHandler(uc *usecase.LocataireUseCase, paiementUC *usecase.PaiementUseCase) *LocataireHandler {
	return &LocataireHandler{uc: uc, paiementUC: paiementUC}
}

// Create godoc
// @Summary      Créer un locataire (actif)
// @Tags         locataires
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LocataireRequest  true  "Données du locataire"
// @Success      201   {object}  dto.LocataireResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locataires [post]
func (h *LocataireHandler) Create(c *fiber.Ctx) error {
	var in dto.LocataireRequest
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
// @Summary      Obtenir un locataire
// @Tags         locataires
// @Produce      json
// @Param        id   path  string  true  "ID du locataire"
// @Success      200  {object}  dto.LocataireResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locataires/{id} [get]
func (h *LocataireHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les locataires
// @Tags         locataires
// @Produce      json
// @Param        actifs  query  bool  false  "Restreindre aux baux actifs"
// @Success      200     {array}  dto.LocataireResponse
// @Router       /api/locataires [get]
func (h *LocataireHandler) List(c *fiber.Ctx) error {
	actifs := c.QueryBool("actifs", false)
	out, err := h.uc.List(actifs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un locataire (y compris le drapeau actif)
// @Tags         locataires
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID du locataire"
// @Param        body  body  dto.LocataireRequest  true  "Données du locataire"
// @Success      200   {object}  dto.LocataireResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locataires/{id} [put]
func (h *LocataireHandler) Update(c *fiber.Ctx) error {
	var in dto.LocataireRequest
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
// @Summary      Supprimer un locataire (paiements en cascade)
// @Tags         locataires
// @Produce      json
// @Param        id   path  string  true  "ID du locataire"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locataires/{id} [delete]
func (h *LocataireHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Locataire supprimé."})
}

// ListPaiements godoc
// @Summary      Lister les paiements d'un locataire
// @Tags         locataires
// @Produce      json
// @Param        id   path  string  true  "ID du locataire"
// @Success      200  {array}  dto.PaiementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locataires/{id}/paiements [get]
func (h *LocataireHandler) ListPaiements(c *fiber.Ctx) error {
	id := c.Params("id")
	// Vérifie l'existence avant de lister, pour distinguer 404 de liste vide.
	if _, err := h.uc.GetByID(id); err != nil {
		return respondError(c, err)
	}
	out, err := h.paiementUC.ListByLocataire(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
