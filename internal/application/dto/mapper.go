package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
)

// Convertisseurs entité → DTO, partagés par les cas d'usage.

// FromBien convertit un bien ; locataireActuel est le premier locataire actif
// du bien déjà converti, ou nil si le bien est vacant.
func FromBien(b *entity.Bien, locataireActuel *LocataireResponse) *BienResponse {
	if b == nil {
		return nil
	}
	return &BienResponse{
		ID:                b.ID,
		Nom:               b.Nom,
		TypeBien:          b.TypeBien,
		TypeBienLabel:     b.TypeBienLabel(),
		Adresse:           b.Adresse,
		Surface:           b.Surface,
		Description:       b.Description,
		ChargesMensuelles: b.ChargesMensuelles,
		DateAcquisition:   b.DateAcquisition,
		LocataireActuel:   locataireActuel,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// FromLocataire convertit un locataire ; chargesBien sont les charges
// mensuelles de son bien, nécessaires au loyer total affiché.
func FromLocataire(l *entity.Locataire, chargesBien decimal.Decimal) *LocataireResponse {
	if l == nil {
		return nil
	}
	return &LocataireResponse{
		ID:               l.ID,
		Nom:              l.Nom,
		Prenom:           l.Prenom,
		Email:            l.Email,
		Telephone:        l.Telephone,
		DateNaissance:    l.DateNaissance,
		RaisonSociale:    l.RaisonSociale,
		SIRET:            l.SIRET,
		Dirigeant:        l.Dirigeant,
		BienID:           l.BienID,
		DateDebutBail:    l.DateDebutBail,
		DateFinBail:      l.DateFinBail,
		LoyerMensuel:     l.LoyerMensuel,
		DepotGarantie:    l.DepotGarantie,
		JourPaiement:     l.JourPaiement,
		Actif:            l.Actif,
		NomComplet:       l.NomComplet(),
		EstProfessionnel: l.EstProfessionnel(),
		LoyerTotal:       l.LoyerTotal(chargesBien),
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

// FromPaiement convertit un paiement.
func FromPaiement(p *entity.Paiement) *PaiementResponse {
	if p == nil {
		return nil
	}
	return &PaiementResponse{
		ID:               p.ID,
		LocataireID:      p.LocataireID,
		Montant:          p.Montant,
		DatePaiement:     p.DatePaiement,
		MoisConcerne:     p.MoisConcerne,
		Categorie:        p.Categorie,
		CategorieLabel:   p.CategorieLabel(),
		ModePaiement:     p.ModePaiement,
		Commentaire:      p.Commentaire,
		QuittanceGeneree: p.QuittanceGeneree,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// FromBailleur convertit le bailleur.
func FromBailleur(b *entity.Bailleur) *BailleurResponse {
	if b == nil {
		return nil
	}
	return &BailleurResponse{
		ID:              b.ID,
		Nom:             b.Nom,
		Adresse:         b.Adresse,
		CodePostal:      b.CodePostal,
		Ville:           b.Ville,
		Telephone:       b.Telephone,
		Email:           b.Email,
		SIRET:           b.SIRET,
		AdresseComplete: b.AdresseComplete(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
