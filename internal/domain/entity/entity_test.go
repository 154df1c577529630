package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Locataire
// ──────────────────────────────────────────────────────────────────────────────

func TestLocataire_NomComplet_Particulier(t *testing.T) {
	l := &entity.Locataire{Nom: "Martin", Prenom: "Sophie"}
	assert.Equal(t, "Sophie Martin", l.NomComplet())
	assert.False(t, l.EstProfessionnel())
}

func TestLocataire_NomComplet_RaisonSocialePrioritaire(t *testing.T) {
	// Dès que la raison sociale est renseignée, elle prime sur prénom/nom.
	l := &entity.Locataire{Nom: "Martin", Prenom: "Sophie", RaisonSociale: "Boulangerie Dupain SARL"}
	assert.Equal(t, "Boulangerie Dupain SARL", l.NomComplet())
	assert.True(t, l.EstProfessionnel())
}

func TestLocataire_LoyerTotal(t *testing.T) {
	l := &entity.Locataire{LoyerMensuel: decimal.NewFromInt(750)}
	charges := decimal.NewFromInt(80)
	assert.True(t, decimal.NewFromInt(830).Equal(l.LoyerTotal(charges)),
		"le loyer total doit additionner loyer et charges du bien")
	assert.True(t, decimal.NewFromInt(750).Equal(l.LoyerTotal(decimal.Zero)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Bien
// ──────────────────────────────────────────────────────────────────────────────

func TestBien_TypeBienLabel(t *testing.T) {
	assert.Equal(t, "Appartement", (&entity.Bien{TypeBien: entity.TypeBienAppartement}).TypeBienLabel())
	assert.Equal(t, "Local commercial", (&entity.Bien{TypeBien: entity.TypeBienLocalCommercial}).TypeBienLabel())
	// Type inconnu : affiché tel quel plutôt que masqué.
	assert.Equal(t, "garage", (&entity.Bien{TypeBien: "garage"}).TypeBienLabel())
}

func TestBien_EstLocalCommercial(t *testing.T) {
	assert.True(t, (&entity.Bien{TypeBien: entity.TypeBienLocalCommercial}).EstLocalCommercial())
	assert.False(t, (&entity.Bien{TypeBien: entity.TypeBienAppartement}).EstLocalCommercial())
}

// ──────────────────────────────────────────────────────────────────────────────
// Bailleur
// ──────────────────────────────────────────────────────────────────────────────

func TestBailleur_AdresseComplete(t *testing.T) {
	b := &entity.Bailleur{Adresse: "3 rue des Lilas", CodePostal: "69003", Ville: "Lyon"}
	assert.Equal(t, "3 rue des Lilas, 69003 Lyon", b.AdresseComplete())
}

// Code postal ou ville manquant : l'adresse seule, sans suffixe partiel.
func TestBailleur_AdresseComplete_SansVille(t *testing.T) {
	b := &entity.Bailleur{Adresse: "3 rue des Lilas", CodePostal: "69003"}
	assert.Equal(t, "3 rue des Lilas", b.AdresseComplete())
}

// ──────────────────────────────────────────────────────────────────────────────
// Paiement
// ──────────────────────────────────────────────────────────────────────────────

func TestPaiement_CategorieLabel(t *testing.T) {
	assert.Equal(t, "Loyer", (&entity.Paiement{Categorie: entity.CategorieLoyer}).CategorieLabel())
	assert.Equal(t, "Taxe foncière", (&entity.Paiement{Categorie: entity.CategorieTaxeFonciere}).CategorieLabel())
	// Catégorie inconnue : affichée telle quelle.
	assert.Equal(t, "regularisation", (&entity.Paiement{Categorie: "regularisation"}).CategorieLabel())
}

func TestCategoriesPaiement_OrdreEtLabels(t *testing.T) {
	// L'ordre du référentiel est celui des formulaires et des quittances.
	codes := make([]string, 0, len(entity.CategoriesPaiement))
	for _, c := range entity.CategoriesPaiement {
		codes = append(codes, c.Code)
	}
	assert.Equal(t, []string{
		entity.CategorieLoyer,
		entity.CategorieEauAssainissement,
		entity.CategorieOrduresMenageres,
		entity.CategorieTaxeFonciere,
	}, codes)

	labels := entity.CategorieLabels()
	assert.Len(t, labels, 4)
	assert.Equal(t, "Eau et assainissement", labels[entity.CategorieEauAssainissement])
	assert.Equal(t, "Ordures ménagères", labels[entity.CategorieOrduresMenageres])
}
