package repository

import "github.com/tmercier/gestion-locative-api/internal/domain/entity"

// BailleurRepository définit le port de persistance du bailleur.
// Le système n'exploite que le premier enregistrement de la table (accès
// singleton explicite, pas de global caché).
type BailleurRepository interface {
	// GetFirst renvoie le premier bailleur enregistré, ou nil s'il n'y en a aucun.
	GetFirst() (*entity.Bailleur, error)
	Create(bailleur *entity.Bailleur) error
	Update(bailleur *entity.Bailleur) error
}
