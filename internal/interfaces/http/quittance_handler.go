package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tmercier/gestion-locative-api/internal/application/quittance"
)

// QuittanceHandler gère les requêtes de quittance de loyer.
type QuittanceHandler struct {
	uc *quittance.UseCase
}

// NewQuittanceHandler construit le handler.
func NewQuittanceHandler(uc *quittance.UseCase) *QuittanceHandler {
	return &QuittanceHandler{uc: uc}
}

// Get godoc
// @Summary      Quittance d'un locataire pour un mois
// @Description  Paiements du mois groupés par catégorie, bailleur en en-tête,
// @Description  total du mois. Le mois est un jeton AAAA-MM.
// @Tags         quittances
// @Produce      json
// @Param        locataireID  path  string  true  "ID du locataire"
// @Param        mois         path  string  true  "Mois concerné (AAAA-MM)"
// @Success      200  {object}  dto.QuittanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quittances/{locataireID}/{mois} [get]
func (h *QuittanceHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Build(c.Context(), c.Params("locataireID"), c.Params("mois"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Télécharger la quittance en PDF
// @Tags         quittances
// @Produce      application/pdf
// @Param        locataireID  path  string  true  "ID du locataire"
// @Param        mois         path  string  true  "Mois concerné (AAAA-MM)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quittances/{locataireID}/{mois}/pdf [get]
func (h *QuittanceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadPDF(c.Context(), c.Params("locataireID"), c.Params("mois"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
