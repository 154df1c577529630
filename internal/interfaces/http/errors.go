// Package http expose l'API REST de la gestion locative via Fiber.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tmercier/gestion-locative-api/internal/application/dto"
	"github.com/tmercier/gestion-locative-api/internal/domain"
	"github.com/tmercier/gestion-locative-api/internal/domain/rental"
)

// respondError traduit une erreur applicative en réponse HTTP. Les messages
// de validation sont renvoyés tels quels : ils sont destinés au formulaire.
func respondError(c *fiber.Ctx, err error) error {
	var verr *rental.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Message})
	case errors.Is(err, rental.ErrFormatMois):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MOIS_INVALIDE", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ressource introuvable"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps de requête invalide"})
}
