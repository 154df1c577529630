package dto

import "time"

// BailleurRequest corps d'enregistrement des paramètres du bailleur
// (create-or-update du seul enregistrement exploité).
type BailleurRequest struct {
	Nom        string `json:"nom"`
	Adresse    string `json:"adresse"`
	CodePostal string `json:"code_postal"`
	Ville      string `json:"ville"`
	Telephone  string `json:"telephone"`
	Email      string `json:"email"`
	SIRET      string `json:"siret"`
}

// BailleurResponse représentation du bailleur.
type BailleurResponse struct {
	ID              string    `json:"id"`
	Nom             string    `json:"nom"`
	Adresse         string    `json:"adresse"`
	CodePostal      string    `json:"code_postal"`
	Ville           string    `json:"ville"`
	Telephone       string    `json:"telephone"`
	Email           string    `json:"email"`
	SIRET           string    `json:"siret"`
	AdresseComplete string    `json:"adresse_complete"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
