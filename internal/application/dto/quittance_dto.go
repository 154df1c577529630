package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuittanceResponse données complètes d'une quittance de loyer pour un
// locataire et un mois concerné. Le rendu (HTML ou PDF) se fait à partir de
// cette structure, seule sortie de l'assemblage.
type QuittanceResponse struct {
	Locataire LocataireResponse  `json:"locataire"`
	Bailleur  *BailleurResponse  `json:"bailleur"`
	Paiements []PaiementResponse `json:"paiements"`
	// ParCategorie paiements du mois groupés par code de catégorie.
	ParCategorie map[string][]PaiementResponse `json:"paiements_par_categorie"`
	// Total somme des montants de tous les paiements du mois.
	Total decimal.Decimal `json:"total"`
	// CategoriesLabels libellés de toutes les catégories connues.
	CategoriesLabels map[string]string `json:"categories_labels"`
	Mois             string            `json:"mois"`     // jeton AAAA-MM
	MoisNom          string            `json:"mois_nom"` // ex : "Mars"
	Annee            string            `json:"annee"`    // ex : "2024"
	DateGeneration   time.Time         `json:"date_generation"`
}
