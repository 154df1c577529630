package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaiementRequest corps de création/modification d'un paiement.
type PaiementRequest struct {
	LocataireID  string           `json:"locataire_id"`
	Montant      *decimal.Decimal `json:"montant"`
	DatePaiement string           `json:"date_paiement"`
	MoisConcerne string           `json:"mois_concerne"`
	Categorie    string           `json:"categorie"`
	ModePaiement string           `json:"mode_paiement"`
	Commentaire  string           `json:"commentaire"`
}

// PaiementResponse représentation d'un paiement.
type PaiementResponse struct {
	ID               string          `json:"id"`
	LocataireID      string          `json:"locataire_id"`
	Montant          decimal.Decimal `json:"montant"`
	DatePaiement     time.Time       `json:"date_paiement"`
	MoisConcerne     string          `json:"mois_concerne"`
	Categorie        string          `json:"categorie"`
	CategorieLabel   string          `json:"categorie_label"`
	ModePaiement     string          `json:"mode_paiement"`
	Commentaire      string          `json:"commentaire"`
	QuittanceGeneree bool            `json:"quittance_generee"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// CategorieResponse entrée du référentiel des catégories de paiement.
type CategorieResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
