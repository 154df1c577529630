package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmercier/gestion-locative-api/internal/application/analytics"
	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
	"github.com/tmercier/gestion-locative-api/internal/domain/rental"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func bien(id string, charges int64) *entity.Bien {
	return &entity.Bien{
		ID:                id,
		Nom:               "Bien " + id,
		TypeBien:          entity.TypeBienAppartement,
		ChargesMensuelles: decimal.NewFromInt(charges),
	}
}

func locataire(id, bienID string, loyer int64, jourPaiement int) *entity.Locataire {
	return &entity.Locataire{
		ID:           id,
		Nom:          "Locataire " + id,
		Prenom:       "Test",
		BienID:       bienID,
		LoyerMensuel: decimal.NewFromInt(loyer),
		JourPaiement: jourPaiement,
		Actif:        true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeDashboard
// ──────────────────────────────────────────────────────────────────────────────

// Deux locataires actifs : 750+80 et 100+20 de loyer charges comprises, soit
// 950 de revenus mensuels attendus.
func TestComputeDashboard_RevenusMensuels(t *testing.T) {
	biens := []*entity.Bien{bien("b1", 80), bien("b2", 20)}
	actifs := []*entity.Locataire{
		locataire("l1", "b1", 750, 5),
		locataire("l2", "b2", 100, 5),
	}
	today := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)

	out := analytics.ComputeDashboard(biens, actifs, decimal.NewFromInt(830), map[string]bool{"l1": true}, today)

	assert.Equal(t, "2025-06", out.MoisActuel)
	assert.True(t, decimal.NewFromInt(950).Equal(out.RevenusMensuels),
		"les revenus attendus doivent sommer les loyers charges comprises")
	assert.True(t, decimal.NewFromInt(830).Equal(out.TotalPercu))
	assert.Len(t, out.LocatairesActifs, 2)
}

func TestComputeDashboard_LoyersEnRetard(t *testing.T) {
	biens := []*entity.Bien{bien("b1", 0), bien("b2", 0)}
	actifs := []*entity.Locataire{
		locataire("l1", "b1", 750, 5), // a payé
		locataire("l2", "b2", 600, 5), // pas payé, jour dépassé
	}
	today := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	out := analytics.ComputeDashboard(biens, actifs, decimal.NewFromInt(750), map[string]bool{"l1": true}, today)

	require.Len(t, out.LoyersEnRetard, 1)
	assert.Equal(t, "l2", out.LoyersEnRetard[0].ID)
}

// Avant le jour de paiement, personne n'est en retard même sans paiement.
func TestComputeDashboard_PasDeRetardAvantLeJour(t *testing.T) {
	biens := []*entity.Bien{bien("b1", 0)}
	actifs := []*entity.Locataire{locataire("l1", "b1", 750, 15)}
	today := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	out := analytics.ComputeDashboard(biens, actifs, decimal.Zero, map[string]bool{}, today)
	assert.Empty(t, out.LoyersEnRetard)
}

func TestComputeDashboard_LocataireActuelParBien(t *testing.T) {
	biens := []*entity.Bien{bien("b1", 0), bien("b2", 0)}
	actifs := []*entity.Locataire{locataire("l1", "b1", 750, 5)}
	today := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	out := analytics.ComputeDashboard(biens, actifs, decimal.Zero, map[string]bool{}, today)

	require.Len(t, out.Biens, 2)
	require.NotNil(t, out.Biens[0].LocataireActuel, "b1 doit porter son locataire actif")
	assert.Equal(t, "l1", out.Biens[0].LocataireActuel.ID)
	assert.Nil(t, out.Biens[1].LocataireActuel, "b2 est vacant")
}

func TestComputeDashboard_ParcVide(t *testing.T) {
	today := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	out := analytics.ComputeDashboard(nil, nil, decimal.Zero, nil, today)

	assert.True(t, out.RevenusMensuels.IsZero())
	assert.Empty(t, out.LoyersEnRetard)
	assert.Empty(t, out.LocatairesActifs)
	assert.Empty(t, out.Biens)
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeSerieRevenus
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeSerieRevenus_ZeroPourMoisSansPaiement(t *testing.T) {
	today := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	fenetre := rental.FenetreDouzeMois(today)
	totaux := map[string]decimal.Decimal{
		"2025-01": decimal.NewFromInt(750),
		"2025-03": decimal.NewFromInt(830),
	}

	serie := analytics.ComputeSerieRevenus(fenetre, totaux)
	require.Len(t, serie, 12)

	// Une entrée par mois de la fenêtre, zéro si aucun paiement.
	assert.Equal(t, "Avr 2024", serie[0].Mois)
	assert.True(t, serie[0].Total.IsZero())
	assert.True(t, decimal.NewFromInt(750).Equal(serie[9].Total), "janvier 2025")
	assert.True(t, serie[10].Total.IsZero(), "février 2025 sans paiement")
	assert.True(t, decimal.NewFromInt(830).Equal(serie[11].Total), "mars 2025")
}

// La somme de la série égale la somme des totaux de la fenêtre : la
// projection ne perd ni n'invente aucun montant.
func TestComputeSerieRevenus_ConservationDesTotaux(t *testing.T) {
	today := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	fenetre := rental.FenetreDouzeMois(today)
	totaux := map[string]decimal.Decimal{
		"2024-04": decimal.NewFromInt(100),
		"2024-10": decimal.NewFromInt(250),
		"2025-03": decimal.NewFromInt(400),
	}

	serie := analytics.ComputeSerieRevenus(fenetre, totaux)

	somme := decimal.Zero
	for _, m := range serie {
		somme = somme.Add(m.Total)
	}
	assert.True(t, decimal.NewFromInt(750).Equal(somme))
}
