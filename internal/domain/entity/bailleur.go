package entity

import "time"

// Bailleur représente le propriétaire/exploitant, utilisé pour l'en-tête des quittances.
// Le système n'utilise qu'un seul enregistrement (premier de la table), avec une
// sémantique create-or-update côté cas d'usage.
type Bailleur struct {
	ID         string
	Nom        string
	Adresse    string
	CodePostal string
	Ville      string
	Telephone  string
	Email      string
	SIRET      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AdresseComplete renvoie l'adresse, suffixée de ", code_postal ville" quand les deux sont présents.
func (b *Bailleur) AdresseComplete() string {
	adresse := b.Adresse
	if b.CodePostal != "" && b.Ville != "" {
		adresse += ", " + b.CodePostal + " " + b.Ville
	}
	return adresse
}
