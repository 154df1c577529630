package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Types de bien connus. La colonne reste une chaîne libre : un type inconnu
// est affiché tel quel (fallback TypeBienLabel).
const (
	TypeBienAppartement     = "appartement"
	TypeBienLocalCommercial = "local_commercial"
)

// typeBienLabels libellés d'affichage des types connus.
var typeBienLabels = map[string]string{
	TypeBienAppartement:     "Appartement",
	TypeBienLocalCommercial: "Local commercial",
}

// Bien représente un bien immobilier mis en location (appartement ou local commercial).
type Bien struct {
	ID                string
	Nom               string
	TypeBien          string
	Adresse           string
	Surface           *float64 // m², optionnel
	Description       string
	ChargesMensuelles decimal.Decimal
	DateAcquisition   *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TypeBienLabel renvoie le libellé d'affichage du type, ou le type brut s'il est inconnu.
func (b *Bien) TypeBienLabel() string {
	if label, ok := typeBienLabels[b.TypeBien]; ok {
		return label
	}
	return b.TypeBien
}

// EstLocalCommercial indique si le bien impose un locataire professionnel.
func (b *Bien) EstLocalCommercial() bool {
	return b.TypeBien == TypeBienLocalCommercial
}
