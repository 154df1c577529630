package dto

import "github.com/shopspring/decimal"

// RevenusMoisDTO un point de la série des revenus : libellé "Mar 2025" et total perçu.
type RevenusMoisDTO struct {
	Mois  string          `json:"mois"`
	Total decimal.Decimal `json:"total"`
}

// BienStatsDTO statistiques d'un bien : locataire actuel et total perçu sur
// l'historique complet de ce locataire (zéro si le bien est vacant).
type BienStatsDTO struct {
	Bien       BienResponse       `json:"bien"`
	Locataire  *LocataireResponse `json:"locataire"`
	TotalPercu decimal.Decimal    `json:"total_percu"`
}

// StatistiquesResponse réponse de GET /api/statistiques.
type StatistiquesResponse struct {
	// RevenusMensuels série des 12 derniers mois, du plus ancien au plus récent.
	RevenusMensuels []RevenusMoisDTO `json:"revenus_mensuels"`
	BiensStats      []BienStatsDTO   `json:"biens_stats"`
}
