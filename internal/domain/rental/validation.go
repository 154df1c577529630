// Package rental contient les règles métier pures de la gestion locative :
// validation des saisies, calendrier des mois concernés, détection des
// loyers en retard. Aucune dépendance vers la persistance ni le HTTP.
package rental

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
)

// ValidationError erreur corrigeable par l'utilisateur. Le message est celui
// de la première règle violée, affiché tel quel dans le formulaire.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalide(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// BienInput données d'un formulaire bien, après parsing.
type BienInput struct {
	Nom               string
	TypeBien          string
	Adresse           string
	Surface           *float64
	Description       string
	ChargesMensuelles *decimal.Decimal
	DateAcquisition   *time.Time
}

// LocataireInput données d'un formulaire locataire, après parsing.
// Les pointeurs distinguent l'absence de saisie de la valeur zéro.
type LocataireInput struct {
	Nom           string
	Prenom        string
	Email         string
	Telephone     string
	DateNaissance *time.Time

	RaisonSociale string
	SIRET         string
	Dirigeant     string

	BienID        string
	DateDebutBail *time.Time
	DateFinBail   *time.Time
	LoyerMensuel  *decimal.Decimal
	DepotGarantie *decimal.Decimal
	JourPaiement  *int
	Actif         bool
}

// PaiementInput données d'un formulaire paiement, après parsing.
type PaiementInput struct {
	LocataireID  string
	Montant      *decimal.Decimal
	DatePaiement *time.Time
	MoisConcerne string
	Categorie    string
	ModePaiement string
	Commentaire  string
}

// ValidateBien vérifie les règles d'un bien. Renvoie nil si tout passe,
// sinon le message de la première règle violée.
func ValidateBien(in BienInput) *ValidationError {
	if in.Nom == "" {
		return invalide("Le nom du bien est obligatoire.")
	}
	if in.Adresse == "" {
		return invalide("L'adresse est obligatoire.")
	}
	if in.ChargesMensuelles != nil && in.ChargesMensuelles.IsNegative() {
		return invalide("Les charges mensuelles ne peuvent pas être négatives.")
	}
	return nil
}

// ValidateLocataire vérifie les règles d'un locataire, adaptées au type du
// bien résolu (bien == nil signifie que l'identifiant ne correspond à rien).
// L'ordre des vérifications est contractuel : la première règle violée gagne.
func ValidateLocataire(in LocataireInput, bien *entity.Bien) *ValidationError {
	if in.BienID == "" {
		return invalide("Veuillez sélectionner un bien.")
	}
	if bien == nil {
		return invalide("Le bien sélectionné est introuvable.")
	}

	if bien.EstLocalCommercial() {
		// Locataire professionnel
		if in.RaisonSociale == "" {
			return invalide("La raison sociale est obligatoire pour un local commercial.")
		}
		if in.SIRET == "" {
			return invalide("Le numéro SIRET est obligatoire pour un local commercial.")
		}
		if !siretValide(in.SIRET) {
			return invalide("Le numéro SIRET doit contenir exactement 14 chiffres.")
		}
	} else {
		// Locataire particulier
		if in.Nom == "" || in.Prenom == "" {
			return invalide("Le nom et le prénom sont obligatoires.")
		}
	}

	if in.DateDebutBail == nil {
		return invalide("La date de début de bail est obligatoire.")
	}
	if in.LoyerMensuel == nil || in.LoyerMensuel.IsNegative() {
		return invalide("Le loyer mensuel doit être un nombre positif.")
	}
	if in.DepotGarantie != nil && in.DepotGarantie.IsNegative() {
		return invalide("Le dépôt de garantie ne peut pas être négatif.")
	}
	if in.JourPaiement != nil && (*in.JourPaiement < 1 || *in.JourPaiement > 28) {
		return invalide("Le jour de paiement doit être entre 1 et 28.")
	}
	if in.DateFinBail != nil && in.DateFinBail.Before(*in.DateDebutBail) {
		return invalide("La date de fin de bail doit être postérieure à la date de début.")
	}
	return nil
}

// ValidatePaiement vérifie les règles d'un paiement. Le format du mois
// concerné n'est pas contrôlé à l'écriture : il ne l'est qu'à la génération
// de quittance (ParseMois).
func ValidatePaiement(in PaiementInput) *ValidationError {
	if in.LocataireID == "" {
		return invalide("Veuillez sélectionner un locataire.")
	}
	if in.Montant == nil || !in.Montant.IsPositive() {
		return invalide("Le montant doit être un nombre positif.")
	}
	if in.DatePaiement == nil {
		return invalide("La date de paiement est obligatoire.")
	}
	if in.MoisConcerne == "" {
		return invalide("Le mois concerné est obligatoire.")
	}
	return nil
}

// ValidateBailleur vérifie les champs obligatoires du bailleur.
func ValidateBailleur(nom, adresse string) *ValidationError {
	if nom == "" || adresse == "" {
		return invalide("Le nom et l'adresse sont obligatoires.")
	}
	return nil
}

// siretValide : exactement 14 caractères, tous numériques.
func siretValide(siret string) bool {
	if len(siret) != 14 {
		return false
	}
	for _, r := range siret {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
