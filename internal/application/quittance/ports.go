package quittance

import (
	"context"

	"github.com/tmercier/gestion-locative-api/internal/application/dto"
)

// QuittancePDFGenerator rend la quittance en document PDF. L'implémentation
// (Maroto) vit dans l'infrastructure.
type QuittancePDFGenerator interface {
	GenerateQuittancePDF(ctx context.Context, data *dto.QuittanceResponse) ([]byte, error)
}
