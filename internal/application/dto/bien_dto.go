package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BienRequest corps de création/modification d'un bien. Les dates sont des
// chaînes AAAA-MM-JJ (saisie formulaire) ; une date illisible vaut absence.
type BienRequest struct {
	Nom               string           `json:"nom"`
	TypeBien          string           `json:"type_bien"`
	Adresse           string           `json:"adresse"`
	Surface           *float64         `json:"surface"`
	Description       string           `json:"description"`
	ChargesMensuelles *decimal.Decimal `json:"charges_mensuelles"`
	DateAcquisition   string           `json:"date_acquisition"`
}

// BienResponse représentation d'un bien.
type BienResponse struct {
	ID                string          `json:"id"`
	Nom               string          `json:"nom"`
	TypeBien          string          `json:"type_bien"`
	TypeBienLabel     string          `json:"type_bien_label"`
	Adresse           string          `json:"adresse"`
	Surface           *float64        `json:"surface"`
	Description       string          `json:"description"`
	ChargesMensuelles decimal.Decimal `json:"charges_mensuelles"`
	DateAcquisition   *time.Time      `json:"date_acquisition"`
	// LocataireActuel premier locataire actif du bien, ou null.
	LocataireActuel *LocataireResponse `json:"locataire_actuel,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
