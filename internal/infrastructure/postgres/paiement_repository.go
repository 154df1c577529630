package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
	"github.com/tmercier/gestion-locative-api/internal/domain/repository"
)

var _ repository.PaiementRepository = (*PaiementRepo)(nil)

// PaiementRepo implémentation de PaiementRepository (utilisable avec pool ou tx).
type PaiementRepo struct {
	q Querier
}

// NewPaiementRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewPaiementRepository(q Querier) *PaiementRepo {
	return &PaiementRepo{q: q}
}

const paiementColumns = `id, locataire_id, montant, date_paiement, mois_concerne,
	categorie, mode_paiement, commentaire, quittance_generee, created_at, updated_at`

func scanPaiement(row pgx.Row) (*entity.Paiement, error) {
	var p entity.Paiement
	err := row.Scan(
		&p.ID, &p.LocataireID, &p.Montant, &p.DatePaiement, &p.MoisConcerne,
		&p.Categorie, &p.ModePaiement, &p.Commentaire, &p.QuittanceGeneree,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nouveau paiement.
func (r *PaiementRepo) Create(paiement *entity.Paiement) error {
	query := `
		INSERT INTO paiements (id, locataire_id, montant, date_paiement, mois_concerne,
			categorie, mode_paiement, commentaire, quittance_generee, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		paiement.ID, paiement.LocataireID, paiement.Montant, paiement.DatePaiement,
		paiement.MoisConcerne, paiement.Categorie, paiement.ModePaiement,
		paiement.Commentaire, paiement.QuittanceGeneree, paiement.CreatedAt, paiement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert paiement: %w", err)
	}
	return nil
}

// GetByID renvoie un paiement par ID, nil s'il n'existe pas.
func (r *PaiementRepo) GetByID(id string) (*entity.Paiement, error) {
	query := `SELECT ` + paiementColumns + ` FROM paiements WHERE id = $1`
	p, err := scanPaiement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paiement: %w", err)
	}
	return p, nil
}

// List renvoie tous les paiements, du plus récent au plus ancien.
func (r *PaiementRepo) List() ([]*entity.Paiement, error) {
	query := `SELECT ` + paiementColumns + ` FROM paiements ORDER BY date_paiement DESC`
	return r.queryList(query)
}

// ListByLocataire renvoie les paiements d'un locataire, du plus récent au plus ancien.
func (r *PaiementRepo) ListByLocataire(locataireID string) ([]*entity.Paiement, error) {
	query := `SELECT ` + paiementColumns + ` FROM paiements
		WHERE locataire_id = $1 ORDER BY date_paiement DESC`
	return r.queryList(query, locataireID)
}

// ListByLocataireEtMois renvoie les paiements d'un locataire pour un jeton de
// mois exact (comparaison stricte de la chaîne).
func (r *PaiementRepo) ListByLocataireEtMois(locataireID, mois string) ([]*entity.Paiement, error) {
	query := `SELECT ` + paiementColumns + ` FROM paiements
		WHERE locataire_id = $1 AND mois_concerne = $2 ORDER BY date_paiement`
	return r.queryList(query, locataireID, mois)
}

// ListByMois renvoie les paiements de tous les locataires pour un jeton de mois.
func (r *PaiementRepo) ListByMois(mois string) ([]*entity.Paiement, error) {
	query := `SELECT ` + paiementColumns + ` FROM paiements
		WHERE mois_concerne = $1 ORDER BY date_paiement`
	return r.queryList(query, mois)
}

// Update remplace les champs d'un paiement.
func (r *PaiementRepo) Update(paiement *entity.Paiement) error {
	query := `
		UPDATE paiements SET locataire_id = $2, montant = $3, date_paiement = $4,
			mois_concerne = $5, categorie = $6, mode_paiement = $7, commentaire = $8,
			quittance_generee = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		paiement.ID, paiement.LocataireID, paiement.Montant, paiement.DatePaiement,
		paiement.MoisConcerne, paiement.Categorie, paiement.ModePaiement,
		paiement.Commentaire, paiement.QuittanceGeneree, paiement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update paiement: %w", err)
	}
	return nil
}

// Delete supprime un paiement par ID.
func (r *PaiementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM paiements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete paiement: %w", err)
	}
	return nil
}

func (r *PaiementRepo) queryList(query string, args ...any) ([]*entity.Paiement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list paiements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Paiement
	for rows.Next() {
		p, err := scanPaiement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan paiement: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
