package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound = errors.New("ressource introuvable")
	ErrConflict = errors.New("conflit avec l'état actuel")
)
