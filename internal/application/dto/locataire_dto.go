package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LocataireRequest corps de création/modification d'un locataire.
// Les champs monétaires et numériques sont des pointeurs : l'absence de
// saisie se distingue de la valeur zéro pour les règles de validation.
type LocataireRequest struct {
	Nom           string `json:"nom"`
	Prenom        string `json:"prenom"`
	Email         string `json:"email"`
	Telephone     string `json:"telephone"`
	DateNaissance string `json:"date_naissance"`

	RaisonSociale string `json:"raison_sociale"`
	SIRET         string `json:"siret"`
	Dirigeant     string `json:"dirigeant"`

	BienID        string           `json:"bien_id"`
	DateDebutBail string           `json:"date_debut_bail"`
	DateFinBail   string           `json:"date_fin_bail"`
	LoyerMensuel  *decimal.Decimal `json:"loyer_mensuel"`
	DepotGarantie *decimal.Decimal `json:"depot_garantie"`
	JourPaiement  *int             `json:"jour_paiement"`
	Actif         *bool            `json:"actif"`
}

// LocataireResponse représentation d'un locataire.
type LocataireResponse struct {
	ID            string     `json:"id"`
	Nom           string     `json:"nom"`
	Prenom        string     `json:"prenom,omitempty"`
	Email         string     `json:"email"`
	Telephone     string     `json:"telephone"`
	DateNaissance *time.Time `json:"date_naissance"`

	RaisonSociale string `json:"raison_sociale,omitempty"`
	SIRET         string `json:"siret,omitempty"`
	Dirigeant     string `json:"dirigeant,omitempty"`

	BienID        string          `json:"bien_id"`
	DateDebutBail time.Time       `json:"date_debut_bail"`
	DateFinBail   *time.Time      `json:"date_fin_bail"`
	LoyerMensuel  decimal.Decimal `json:"loyer_mensuel"`
	DepotGarantie decimal.Decimal `json:"depot_garantie"`
	JourPaiement  int             `json:"jour_paiement"`
	Actif         bool            `json:"actif"`

	NomComplet       string `json:"nom_complet"`
	EstProfessionnel bool   `json:"est_professionnel"`
	// LoyerTotal loyer mensuel + charges mensuelles du bien.
	LoyerTotal decimal.Decimal `json:"loyer_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
