package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tmercier/gestion-locative-api/internal/application/dto"
	"github.com/tmercier/gestion-locative-api/internal/application/usecase"
)

// BienHandler gère les requêtes HTTP des biens immobiliers.
type BienHandler struct {
	uc          *usecase.BienUseCase
	locataireUC *usecase.LocataireUseCase
}

// NewBienHandler construit le handler.
func NewBienHandler(uc *usecase.BienUseCase, locataireUC *usecase.LocataireUseCase) *BienHandler {
	return &BienHandler{uc: uc, locataireUC: locataireUC}
}

// Create godoc
// @Summary      Créer un bien
// @Tags         biens
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BienRequest  true  "Données du bien"
// @Success      201   {object}  dto.BienResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/biens [post]
func (h *BienHandler) Create(c *fiber.Ctx) error {
	var in dto.BienRequest
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
// @Summary      Obtenir un bien avec son locataire actuel
// @Tags         biens
// @Produce      json
// @Param        id   path  string  true  "ID du bien"
// @Success      200  {object}  dto.BienResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/biens/{id} [get]
func (h *BienHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les biens
// @Tags         biens
// @Produce      json
// @Success      200  {array}  dto.BienResponse
// @Router       /api/biens [get]
func (h *BienHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un bien
// @Tags         biens
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID du bien"
// @Param        body  body  dto.BienRequest  true  "Données du bien"
// @Success      200   {object}  dto.BienResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/biens/{id} [put]
func (h *BienHandler) Update(c *fiber.Ctx) error {
	var in dto.BienRequest
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
// @Summary      Supprimer un bien (locataires et paiements en cascade)
// @Tags         biens
// @Produce      json
// @Param        id   path  string  true  "ID du bien"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/biens/{id} [delete]
func (h *BienHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Bien supprimé."})
}

// ListLocataires godoc
// @Summary      Historique des locataires d'un bien
// @Tags         biens
// @Produce      json
// @Param        id   path  string  true  "ID du bien"
// @Success      200  {array}  dto.LocataireResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/biens/{id}/locataires [get]
func (h *BienHandler) ListLocataires(c *fiber.Ctx) error {
	out, err := h.locataireUC.ListByBien(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
