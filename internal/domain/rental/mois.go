package rental

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrFormatMois mois concerné mal formé (attendu AAAA-MM avec MM entre 01 et 12).
var ErrFormatMois = errors.New("Format de mois invalide.")

// MoisNoms noms français complets, indexés 1–12 (l'index 0 est vide).
var MoisNoms = [13]string{"", "Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre"}

// MoisNomsCourts abréviations françaises, indexées 1–12.
var MoisNomsCourts = [13]string{"", "Jan", "Fév", "Mar", "Avr", "Mai", "Jun",
	"Jul", "Aoû", "Sep", "Oct", "Nov", "Déc"}

// TokenMois renvoie le jeton AAAA-MM du mois de t.
func TokenMois(t time.Time) string {
	return t.Format("2006-01")
}

// ParseMois découpe un jeton de mois en (année, numéro de mois).
// Le jeton doit être exactement deux parties séparées par un tiret, la
// première un entier, la seconde un entier entre 1 et 12. Sinon ErrFormatMois.
func ParseMois(mois string) (annee string, moisNum int, err error) {
	parts := strings.Split(mois, "-")
	if len(parts) != 2 {
		return "", 0, ErrFormatMois
	}
	if _, err := strconv.Atoi(parts[0]); err != nil {
		return "", 0, ErrFormatMois
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n < 1 || n > 12 {
		return "", 0, ErrFormatMois
	}
	return parts[0], n, nil
}

// MoisFenetre un mois de la fenêtre glissante : jeton AAAA-MM et libellé court.
type MoisFenetre struct {
	Token string // ex : "2025-03"
	Label string // ex : "Mar 2025"
}

// FenetreDouzeMois renvoie les 12 mois se terminant au mois de today, du plus
// ancien au plus récent. L'arithmétique part du premier jour du mois pour
// éviter les normalisations de fin de mois (31 mars - 1 mois).
func FenetreDouzeMois(today time.Time) []MoisFenetre {
	premier := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	fenetre := make([]MoisFenetre, 0, 12)
	for i := 11; i >= 0; i-- {
		m := premier.AddDate(0, -i, 0)
		fenetre = append(fenetre, MoisFenetre{
			Token: TokenMois(m),
			Label: fmt.Sprintf("%s %d", MoisNomsCourts[m.Month()], m.Year()),
		})
	}
	return fenetre
}
