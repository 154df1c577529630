package repository

import "github.com/tmercier/gestion-locative-api/internal/domain/entity"

// BienRepository définit le port de persistance des biens.
type BienRepository interface {
	Create(bien *entity.Bien) error
	GetByID(id string) (*entity.Bien, error)
	List() ([]*entity.Bien, error)
	Update(bien *entity.Bien) error
	// Delete supprime le bien ; les locataires rattachés et leurs paiements
	// suivent en cascade (contrainte ON DELETE CASCADE).
	Delete(id string) error
}
