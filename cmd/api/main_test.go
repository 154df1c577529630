package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Chemin du document statique vu depuis ce paquet ; main le référence depuis
// la racine du dépôt ("./docs/swagger.json").
const cheminSwagger = "../../docs/swagger.json"

// ──────────────────────────────────────────────────────────────────────────────
// Documentation Swagger — le document statique doit exister et être exploitable
// ──────────────────────────────────────────────────────────────────────────────

// Le middleware Swagger lit le fichier à l'enregistrement et panique s'il est
// absent : le document doit être versionné avec le dépôt.
func TestSwaggerDocumentVersionne(t *testing.T) {
	_, err := os.Stat(cheminSwagger)
	require.NoError(t, err, "docs/swagger.json doit être présent dans le dépôt")

	app := fiber.New()
	require.NotPanics(t, func() {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cheminSwagger,
			Path:     "docs",
			Title:    "Gestion Locative API",
		}))
	})
}

func TestSwaggerDocumentValide(t *testing.T) {
	raw, err := os.ReadFile(cheminSwagger)
	require.NoError(t, err)

	var doc struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	for _, route := range []string{
		"/api/biens", "/api/locataires", "/api/paiements", "/api/bailleur",
		"/api/dashboard", "/api/statistiques",
		"/api/quittances/{locataireID}/{mois}/pdf",
	} {
		assert.Contains(t, doc.Paths, route)
	}
}
