package dto

// ErrorResponse réponse d'erreur standard de l'API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse réponse de confirmation simple.
type MessageResponse struct {
	Message string `json:"message"`
}
