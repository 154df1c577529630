package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
	"github.com/tmercier/gestion-locative-api/internal/domain/repository"
)

var _ repository.LocataireRepository = (*LocataireRepo)(nil)

// LocataireRepo implémentation de LocataireRepository (utilisable avec pool ou tx).
type LocataireRepo struct {
	q Querier
}

// NewLocataireRepository construit l'adaptateur. Passer un pool ou une tx (Querier).
func NewLocataireRepository(q Querier) *LocataireRepo {
	return &LocataireRepo{q: q}
}

// Les colonnes professionnelles sont issues du correctif additif et restent
// nullables en base ; COALESCE ramène NULL à la chaîne vide.
const locataireColumns = `id, nom, prenom, email, telephone, date_naissance,
	COALESCE(raison_sociale, ''), COALESCE(siret, ''), COALESCE(dirigeant, ''),
	bien_id, date_debut_bail, date_fin_bail, loyer_mensuel, depot_garantie,
	jour_paiement, actif, created_at, updated_at`

func scanLocataire(row pgx.Row) (*entity.Locataire, error) {
	var l entity.Locataire
	err := row.Scan(
		&l.ID, &l.Nom, &l.Prenom, &l.Email, &l.Telephone, &l.DateNaissance,
		&l.RaisonSociale, &l.SIRET, &l.Dirigeant,
		&l.BienID, &l.DateDebutBail, &l.DateFinBail, &l.LoyerMensuel, &l.DepotGarantie,
		&l.JourPaiement, &l.Actif, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create persiste un nouveau locataire.
func (r *LocataireRepo) Create(locataire *entity.Locataire) error {
	query := `
		INSERT INTO locataires (id, nom, prenom, email, telephone, date_naissance,
			raison_sociale, siret, dirigeant, bien_id, date_debut_bail, date_fin_bail,
			loyer_mensuel, depot_garantie, jour_paiement, actif, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		locataire.ID, locataire.Nom, locataire.Prenom, locataire.Email, locataire.Telephone,
		locataire.DateNaissance, locataire.RaisonSociale, locataire.SIRET, locataire.Dirigeant,
		locataire.BienID, locataire.DateDebutBail, locataire.DateFinBail,
		locataire.LoyerMensuel, locataire.DepotGarantie, locataire.JourPaiement,
		locataire.Actif, locataire.CreatedAt, locataire.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert locataire: %w", err)
	}
	return nil
}

// GetByID renvoie un locataire par ID, nil s'il n'existe pas.
func (r *LocataireRepo) GetByID(id string) (*entity.Locataire, error) {
	query := `SELECT ` + locataireColumns + ` FROM locataires WHERE id = $1`
	l, err := scanLocataire(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get locataire: %w", err)
	}
	return l, nil
}

// List renvoie les locataires dans l'ordre d'enregistrement ;
// actifsSeulement restreint aux baux actifs.
func (r *LocataireRepo) List(actifsSeulement bool) ([]*entity.Locataire, error) {
	query := `SELECT ` + locataireColumns + ` FROM locataires`
	if actifsSeulement {
		query += ` WHERE actif`
	}
	query += ` ORDER BY created_at`
	return r.queryList(query)
}

// ListByBien renvoie les locataires d'un bien, dans l'ordre d'enregistrement.
func (r *LocataireRepo) ListByBien(bienID string) ([]*entity.Locataire, error) {
	query := `SELECT ` + locataireColumns + ` FROM locataires WHERE bien_id = $1 ORDER BY created_at`
	return r.queryList(query, bienID)
}

// GetActifByBien renvoie le premier locataire actif du bien (ordre
// d'enregistrement), ou nil si le bien est vacant.
func (r *LocataireRepo) GetActifByBien(bienID string) (*entity.Locataire, error) {
	query := `SELECT ` + locataireColumns + ` FROM locataires
		WHERE bien_id = $1 AND actif ORDER BY created_at LIMIT 1`
	l, err := scanLocataire(r.q.QueryRow(context.Background(), query, bienID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get locataire actif: %w", err)
	}
	return l, nil
}

// Update remplace les champs d'un locataire.
func (r *LocataireRepo) Update(locataire *entity.Locataire) error {
	query := `
		UPDATE locataires SET nom = $2, prenom = $3, email = $4, telephone = $5,
			date_naissance = $6, raison_sociale = $7, siret = $8, dirigeant = $9,
			bien_id = $10, date_debut_bail = $11, date_fin_bail = $12, loyer_mensuel = $13,
			depot_garantie = $14, jour_paiement = $15, actif = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		locataire.ID, locataire.Nom, locataire.Prenom, locataire.Email, locataire.Telephone,
		locataire.DateNaissance, locataire.RaisonSociale, locataire.SIRET, locataire.Dirigeant,
		locataire.BienID, locataire.DateDebutBail, locataire.DateFinBail, locataire.LoyerMensuel,
		locataire.DepotGarantie, locataire.JourPaiement, locataire.Actif, locataire.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update locataire: %w", err)
	}
	return nil
}

// Delete supprime un locataire par ID. La cascade SQL emporte ses paiements.
func (r *LocataireRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM locataires WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete locataire: %w", err)
	}
	return nil
}

func (r *LocataireRepo) queryList(query string, args ...any) ([]*entity.Locataire, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list locataires: %w", err)
	}
	defer rows.Close()
	var list []*entity.Locataire
	for rows.Next() {
		l, err := scanLocataire(rows)
		if err != nil {
			return nil, fmt.Errorf("scan locataire: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
