package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tmercier/gestion-locative-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo agrégations SQL sur les paiements (tableau de bord et statistiques).
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// TotalPercuMois renvoie la somme des montants encaissés pour un jeton de mois,
// toutes catégories confondues. Zéro si aucun paiement.
func (r *AnalyticsRepo) TotalPercuMois(ctx context.Context, mois string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(montant), 0) FROM paiements WHERE mois_concerne = $1`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, mois).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total percu mois: %w", err)
	}
	return total, nil
}

// TotalPercuParMois renvoie les totaux encaissés groupés par jeton de mois,
// pour tous les mois >= moisMin (l'ordre lexicographique de AAAA-MM suit
// l'ordre chronologique).
func (r *AnalyticsRepo) TotalPercuParMois(ctx context.Context, moisMin string) (map[string]decimal.Decimal, error) {
	query := `SELECT mois_concerne, SUM(montant) FROM paiements
		WHERE mois_concerne >= $1 GROUP BY mois_concerne`
	rows, err := r.pool.Query(ctx, query, moisMin)
	if err != nil {
		return nil, fmt.Errorf("total percu par mois: %w", err)
	}
	defer rows.Close()

	totaux := make(map[string]decimal.Decimal)
	for rows.Next() {
		var mois string
		var total decimal.Decimal
		if err := rows.Scan(&mois, &total); err != nil {
			return nil, fmt.Errorf("scan total mois: %w", err)
		}
		totaux[mois] = total
	}
	return totaux, rows.Err()
}

// LocatairesAyantPaye renvoie l'ensemble des locataires ayant au moins un
// paiement (toutes catégories) pour le jeton de mois donné.
func (r *AnalyticsRepo) LocatairesAyantPaye(ctx context.Context, mois string) (map[string]bool, error) {
	query := `SELECT DISTINCT locataire_id FROM paiements WHERE mois_concerne = $1`
	rows, err := r.pool.Query(ctx, query, mois)
	if err != nil {
		return nil, fmt.Errorf("locataires ayant paye: %w", err)
	}
	defer rows.Close()

	payeurs := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan locataire payeur: %w", err)
		}
		payeurs[id] = true
	}
	return payeurs, rows.Err()
}

// TotauxParLocataire renvoie le total encaissé par locataire, toutes périodes
// confondues.
func (r *AnalyticsRepo) TotauxParLocataire(ctx context.Context) (map[string]decimal.Decimal, error) {
	query := `SELECT locataire_id, SUM(montant) FROM paiements GROUP BY locataire_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("totaux par locataire: %w", err)
	}
	defer rows.Close()

	totaux := make(map[string]decimal.Decimal)
	for rows.Next() {
		var id string
		var total decimal.Decimal
		if err := rows.Scan(&id, &total); err != nil {
			return nil, fmt.Errorf("scan total locataire: %w", err)
		}
		totaux[id] = total
	}
	return totaux, rows.Err()
}
