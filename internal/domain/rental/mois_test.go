package rental_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmercier/gestion-locative-api/internal/domain/rental"
)

// ──────────────────────────────────────────────────────────────────────────────
// TokenMois / ParseMois
// ──────────────────────────────────────────────────────────────────────────────

func TestTokenMois_FormatAAAAMM(t *testing.T) {
	assert.Equal(t, "2024-03", rental.TokenMois(time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12", rental.TokenMois(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseMois_OK(t *testing.T) {
	annee, moisNum, err := rental.ParseMois("2024-03")
	require.NoError(t, err)
	assert.Equal(t, "2024", annee)
	assert.Equal(t, 3, moisNum)
	assert.Equal(t, "Mars", rental.MoisNoms[moisNum])
}

func TestParseMois_AllerRetourAvecToken(t *testing.T) {
	token := rental.TokenMois(time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC))
	annee, moisNum, err := rental.ParseMois(token)
	require.NoError(t, err)
	assert.Equal(t, "2025", annee)
	assert.Equal(t, 8, moisNum)
}

func TestParseMois_JetonsInvalides(t *testing.T) {
	cas := []string{
		"",           // vide
		"2024",       // une seule partie
		"2024-03-01", // trois parties
		"2024-13",    // mois hors bornes
		"2024-0",     // mois zéro
		"abcd-03",    // année non numérique
		"2024-xy",    // mois non numérique
	}
	for _, jeton := range cas {
		_, _, err := rental.ParseMois(jeton)
		assert.ErrorIs(t, err, rental.ErrFormatMois, "jeton %q doit être refusé", jeton)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// FenetreDouzeMois
// ──────────────────────────────────────────────────────────────────────────────

func TestFenetreDouzeMois_DouzeEntreesOrdonnees(t *testing.T) {
	fenetre := rental.FenetreDouzeMois(time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC))
	require.Len(t, fenetre, 12)

	// Du plus ancien au plus récent, le dernier étant le mois courant.
	assert.Equal(t, "2024-04", fenetre[0].Token)
	assert.Equal(t, "2025-03", fenetre[11].Token)
	assert.Equal(t, "Avr 2024", fenetre[0].Label)
	assert.Equal(t, "Mar 2025", fenetre[11].Label)
}

// Un 31 du mois ne doit pas décaler la fenêtre : l'arithmétique part du
// premier jour du mois (31 mars - 1 mois ne doit pas donner le 3 mars).
func TestFenetreDouzeMois_FinDeMoisSansNormalisation(t *testing.T) {
	fenetre := rental.FenetreDouzeMois(time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC))
	require.Len(t, fenetre, 12)

	tokens := make(map[string]bool, 12)
	for _, m := range fenetre {
		tokens[m.Token] = true
	}
	// 12 jetons distincts, consécutifs, y compris février.
	assert.Len(t, tokens, 12)
	assert.True(t, tokens["2025-02"], "février doit figurer dans la fenêtre")
	assert.Equal(t, "2025-03", fenetre[11].Token)
}

func TestFenetreDouzeMois_ChevauchementAnnee(t *testing.T) {
	fenetre := rental.FenetreDouzeMois(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2023-02", fenetre[0].Token)
	assert.Equal(t, "2024-01", fenetre[11].Token)
	assert.Equal(t, "Fév 2023", fenetre[0].Label)
}
