package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
	"github.com/tmercier/gestion-locative-api/internal/domain/repository"
)

var _ repository.BailleurRepository = (*BailleurRepo)(nil)

// BailleurRepo implémentation de BailleurRepository (utilisable avec pool ou tx).
type BailleurRepo struct {
	q Querier
}

// NewBailleurRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewBailleurRepository(q Querier) *BailleurRepo {
	return &BailleurRepo{q: q}
}

// GetFirst renvoie le premier bailleur enregistré, nil si la table est vide.
// Seul cet enregistrement est exploité par le système.
func (r *BailleurRepo) GetFirst() (*entity.Bailleur, error) {
	query := `
		SELECT id, nom, adresse, code_postal, ville, telephone, email, siret, created_at, updated_at
		FROM bailleurs ORDER BY created_at LIMIT 1`
	var b entity.Bailleur
	err := r.q.QueryRow(context.Background(), query).Scan(
		&b.ID, &b.Nom, &b.Adresse, &b.CodePostal, &b.Ville,
		&b.Telephone, &b.Email, &b.SIRET, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bailleur: %w", err)
	}
	return &b, nil
}

// Create persiste le bailleur.
func (r *BailleurRepo) Create(bailleur *entity.Bailleur) error {
	query := `
		INSERT INTO bailleurs (id, nom, adresse, code_postal, ville, telephone, email, siret, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		bailleur.ID, bailleur.Nom, bailleur.Adresse, bailleur.CodePostal, bailleur.Ville,
		bailleur.Telephone, bailleur.Email, bailleur.SIRET, bailleur.CreatedAt, bailleur.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bailleur: %w", err)
	}
	return nil
}

// Update remplace les champs du bailleur.
func (r *BailleurRepo) Update(bailleur *entity.Bailleur) error {
	query := `
		UPDATE bailleurs SET nom = $2, adresse = $3, code_postal = $4, ville = $5,
			telephone = $6, email = $7, siret = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		bailleur.ID, bailleur.Nom, bailleur.Adresse, bailleur.CodePostal, bailleur.Ville,
		bailleur.Telephone, bailleur.Email, bailleur.SIRET, bailleur.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bailleur: %w", err)
	}
	return nil
}
