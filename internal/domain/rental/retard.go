package rental

import "time"

// EnRetard indique si un locataire est en retard pour le mois en cours :
// aucun paiement enregistré ce mois-ci (toutes catégories confondues) et le
// jour du mois dépassé par rapport au jour de paiement convenu.
//
// Un paiement de n'importe quelle catégorie vaut "payé" pour le mois, pas
// seulement le loyer. Comportement historique conservé tel quel.
func EnRetard(jourPaiement int, today time.Time, aPayeCeMois bool) bool {
	if aPayeCeMois {
		return false
	}
	return today.Day() > jourPaiement
}
