package repository

import "github.com/tmercier/gestion-locative-api/internal/domain/entity"

// LocataireRepository définit le port de persistance des locataires.
type LocataireRepository interface {
	Create(locataire *entity.Locataire) error
	GetByID(id string) (*entity.Locataire, error)
	// List renvoie tous les locataires ; actifsSeulement restreint aux baux actifs.
	List(actifsSeulement bool) ([]*entity.Locataire, error)
	ListByBien(bienID string) ([]*entity.Locataire, error)
	// GetActifByBien renvoie le premier locataire actif du bien, ou nil.
	GetActifByBien(bienID string) (*entity.Locataire, error)
	Update(locataire *entity.Locataire) error
	// Delete supprime le locataire ; ses paiements suivent en cascade.
	Delete(id string) error
}
