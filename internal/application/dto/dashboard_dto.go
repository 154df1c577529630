package dto

import "github.com/shopspring/decimal"

// DashboardResponse réponse de GET /api/dashboard : les indicateurs du mois
// en cours pour le tableau de bord.
type DashboardResponse struct {
	// MoisActuel jeton AAAA-MM du mois courant.
	MoisActuel string `json:"mois_actuel"`
	// RevenusMensuels somme des loyers totaux (loyer + charges) des locataires actifs.
	RevenusMensuels decimal.Decimal `json:"revenus_mensuels"`
	// TotalPercu somme des paiements dont le mois concerné est le mois courant.
	TotalPercu decimal.Decimal `json:"total_percu"`
	// LoyersEnRetard locataires actifs sans paiement ce mois-ci et dont le
	// jour de paiement est dépassé.
	LoyersEnRetard []LocataireResponse `json:"loyers_en_retard"`
	// LocatairesActifs tous les locataires au bail actif.
	LocatairesActifs []LocataireResponse `json:"locataires_actifs"`
	// Biens l'ensemble du parc.
	Biens []BienResponse `json:"biens"`
}
