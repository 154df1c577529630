package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmercier/gestion-locative-api/internal/application/dto"
	"github.com/tmercier/gestion-locative-api/internal/domain"
	"github.com/tmercier/gestion-locative-api/internal/domain/rental"
)

// ──────────────────────────────────────────────────────────────────────────────
// respondError — traduction des erreurs applicatives en réponses HTTP
// ──────────────────────────────────────────────────────────────────────────────

// doError monte une route qui renvoie l'erreur donnée et retourne la réponse.
func doError(t *testing.T, err error) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/err", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/err", nil), -1)
	require.NoError(t, reqErr)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return resp, body
}

// Une erreur de validation renvoie 400 avec le message du formulaire tel quel.
func TestRespondError_Validation400(t *testing.T) {
	resp, body := doError(t, &rental.ValidationError{Message: "Le montant doit être un nombre positif."})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "Le montant doit être un nombre positif.", body.Message)
}

func TestRespondError_FormatMois400(t *testing.T) {
	resp, body := doError(t, rental.ErrFormatMois)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "MOIS_INVALIDE", body.Code)
	assert.Equal(t, "Format de mois invalide.", body.Message)
}

func TestRespondError_NotFound404(t *testing.T) {
	resp, body := doError(t, domain.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

// Les erreurs enveloppées restent reconnues (errors.Is à travers le wrapping).
func TestRespondError_NotFoundEnveloppe404(t *testing.T) {
	wrapped := fmt.Errorf("quittance: obtenir locataire: %w", domain.ErrNotFound)
	resp, _ := doError(t, wrapped)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRespondError_Conflict409(t *testing.T) {
	wrapped := fmt.Errorf("%w : un locataire actif est déjà rattaché à ce bien", domain.ErrConflict)
	resp, body := doError(t, wrapped)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body.Code)
	assert.Contains(t, body.Message, "locataire actif")
}

func TestRespondError_Inconnue500(t *testing.T) {
	resp, body := doError(t, fmt.Errorf("connexion perdue"))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", body.Code)
}
