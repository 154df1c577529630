package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
	"github.com/tmercier/gestion-locative-api/internal/domain/repository"
)

var _ repository.BienRepository = (*BienRepo)(nil)

// BienRepo implémentation de BienRepository (utilisable avec pool ou tx).
type BienRepo struct {
	q Querier
}

// NewBienRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewBienRepository(q Querier) *BienRepo {
	return &BienRepo{q: q}
}

const bienColumns = `id, nom, type_bien, adresse, surface, description,
	charges_mensuelles, date_acquisition, created_at, updated_at`

// Create persiste un nouveau bien.
func (r *BienRepo) Create(bien *entity.Bien) error {
	query := `
		INSERT INTO biens (id, nom, type_bien, adresse, surface, description,
			charges_mensuelles, date_acquisition, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		bien.ID, bien.Nom, bien.TypeBien, bien.Adresse, bien.Surface, bien.Description,
		bien.ChargesMensuelles, bien.DateAcquisition, bien.CreatedAt, bien.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bien: %w", err)
	}
	return nil
}

// GetByID renvoie un bien par ID, nil s'il n'existe pas.
func (r *BienRepo) GetByID(id string) (*entity.Bien, error) {
	query := `SELECT ` + bienColumns + ` FROM biens WHERE id = $1`
	var b entity.Bien
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Nom, &b.TypeBien, &b.Adresse, &b.Surface, &b.Description,
		&b.ChargesMensuelles, &b.DateAcquisition, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bien: %w", err)
	}
	return &b, nil
}

// List renvoie tous les biens, dans l'ordre d'enregistrement.
func (r *BienRepo) List() ([]*entity.Bien, error) {
	query := `SELECT ` + bienColumns + ` FROM biens ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list biens: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bien
	for rows.Next() {
		var b entity.Bien
		if err := rows.Scan(
			&b.ID, &b.Nom, &b.TypeBien, &b.Adresse, &b.Surface, &b.Description,
			&b.ChargesMensuelles, &b.DateAcquisition, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bien: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update remplace les champs modifiables d'un bien.
func (r *BienRepo) Update(bien *entity.Bien) error {
	query := `
		UPDATE biens SET nom = $2, type_bien = $3, adresse = $4, surface = $5,
			description = $6, charges_mensuelles = $7, date_acquisition = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		bien.ID, bien.Nom, bien.TypeBien, bien.Adresse, bien.Surface,
		bien.Description, bien.ChargesMensuelles, bien.DateAcquisition, bien.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bien: %w", err)
	}
	return nil
}

// Delete supprime un bien par ID. La cascade SQL emporte locataires et paiements.
func (r *BienRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM biens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bien: %w", err)
	}
	return nil
}
