package repository

import "github.com/tmercier/gestion-locative-api/internal/domain/entity"

// PaiementRepository définit le port de persistance des paiements.
type PaiementRepository interface {
	Create(paiement *entity.Paiement) error
	GetByID(id string) (*entity.Paiement, error)
	// List renvoie tous les paiements, du plus récent au plus ancien (date de paiement).
	List() ([]*entity.Paiement, error)
	ListByLocataire(locataireID string) ([]*entity.Paiement, error)
	// ListByLocataireEtMois renvoie les paiements d'un locataire pour un jeton
	// de mois exact (comparaison stricte de la chaîne AAAA-MM).
	ListByLocataireEtMois(locataireID, mois string) ([]*entity.Paiement, error)
	// ListByMois renvoie les paiements de tous les locataires pour un jeton de mois.
	ListByMois(mois string) ([]*entity.Paiement, error)
	Update(paiement *entity.Paiement) error
	Delete(id string) error
}
