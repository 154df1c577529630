package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository définit les requêtes de lecture pour le tableau de bord
// et les statistiques. Les implémentations sont read-only.
type AnalyticsRepository interface {
	// TotalPercuMois renvoie la somme des montants des paiements dont le mois
	// concerné est exactement le jeton donné. Zéro si aucun paiement.
	TotalPercuMois(ctx context.Context, mois string) (decimal.Decimal, error)

	// TotalPercuParMois renvoie la somme des montants par mois concerné, pour
	// tous les mois ≥ moisMin (comparaison lexicographique des jetons AAAA-MM).
	TotalPercuParMois(ctx context.Context, moisMin string) (map[string]decimal.Decimal, error)

	// LocatairesAyantPaye renvoie l'ensemble des identifiants de locataires
	// ayant au moins un paiement (toutes catégories) pour le mois donné.
	LocatairesAyantPaye(ctx context.Context, mois string) (map[string]bool, error)

	// TotauxParLocataire renvoie la somme historique des paiements de chaque
	// locataire, toutes catégories et tous mois confondus.
	TotauxParLocataire(ctx context.Context) (map[string]decimal.Decimal, error)
}
