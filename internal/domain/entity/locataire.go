package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Locataire représente le titulaire du bail d'un bien, particulier ou professionnel.
// Les champs RaisonSociale, SIRET et Dirigeant ne concernent que les locataires
// professionnels (local commercial).
type Locataire struct {
	ID            string
	Nom           string
	Prenom        string // vide pour un locataire professionnel
	Email         string
	Telephone     string
	DateNaissance *time.Time

	RaisonSociale string
	SIRET         string // exactement 14 chiffres quand présent
	Dirigeant     string

	BienID        string
	DateDebutBail time.Time
	DateFinBail   *time.Time
	LoyerMensuel  decimal.Decimal
	DepotGarantie decimal.Decimal
	JourPaiement  int // jour du mois attendu pour le paiement, 1–28
	Actif         bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NomComplet renvoie la raison sociale si elle est renseignée, sinon "prénom nom".
func (l *Locataire) NomComplet() string {
	if l.RaisonSociale != "" {
		return l.RaisonSociale
	}
	return l.Prenom + " " + l.Nom
}

// EstProfessionnel indique si le locataire est une entreprise.
func (l *Locataire) EstProfessionnel() bool {
	return l.RaisonSociale != ""
}

// LoyerTotal renvoie le loyer mensuel augmenté des charges mensuelles du bien.
func (l *Locataire) LoyerTotal(chargesBien decimal.Decimal) decimal.Decimal {
	return l.LoyerMensuel.Add(chargesBien)
}
