package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Catégories de paiement connues. La colonne reste une chaîne libre : une
// catégorie inconnue est affichée telle quelle (fallback CategorieLabel).
const (
	CategorieLoyer             = "loyer"
	CategorieEauAssainissement = "eau_assainissement"
	CategorieOrduresMenageres  = "ordures_menageres"
	CategorieTaxeFonciere      = "taxe_fonciere"
)

// CategoriesPaiement libellés d'affichage des catégories connues, dans l'ordre
// de présentation des formulaires et des quittances.
var CategoriesPaiement = []struct {
	Code  string
	Label string
}{
	{CategorieLoyer, "Loyer"},
	{CategorieEauAssainissement, "Eau et assainissement"},
	{CategorieOrduresMenageres, "Ordures ménagères"},
	{CategorieTaxeFonciere, "Taxe foncière"},
}

// CategorieLabels renvoie la table code → libellé des catégories connues.
func CategorieLabels() map[string]string {
	labels := make(map[string]string, len(CategoriesPaiement))
	for _, c := range CategoriesPaiement {
		labels[c.Code] = c.Label
	}
	return labels
}

// Paiement représente un versement d'un locataire pour un mois donné (mois concerné
// au format AAAA-MM, distinct de la date effective du versement).
type Paiement struct {
	ID               string
	LocataireID      string
	Montant          decimal.Decimal
	DatePaiement     time.Time
	MoisConcerne     string // AAAA-MM
	Categorie        string
	ModePaiement     string
	Commentaire      string
	QuittanceGeneree bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CategorieLabel renvoie le libellé d'affichage de la catégorie, ou la catégorie
// brute si elle est inconnue.
func (p *Paiement) CategorieLabel() string {
	if label, ok := CategorieLabels()[p.Categorie]; ok {
		return label
	}
	return p.Categorie
}
