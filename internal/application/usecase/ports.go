package usecase

import (
	"context"

	"github.com/tmercier/gestion-locative-api/internal/domain/repository"
)

// LocataireTxRunner exécute fn dans une transaction de base de données, avec
// un repository des locataires attaché à cette transaction. Garantit que le
// contrôle d'unicité du locataire actif et l'écriture qui le suit forment une
// seule unité atomique.
type LocataireTxRunner interface {
	Run(ctx context.Context, fn func(locataireRepo repository.LocataireRepository) error) error
}
