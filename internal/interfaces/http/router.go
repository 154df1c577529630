package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tmercier/gestion-locative-api/internal/application/analytics"
	"github.com/tmercier/gestion-locative-api/internal/application/quittance"
	"github.com/tmercier/gestion-locative-api/internal/application/usecase"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	BienUC         *usecase.BienUseCase
	LocataireUC    *usecase.LocataireUseCase
	PaiementUC     *usecase.PaiementUseCase
	BailleurUC     *usecase.BailleurUseCase
	DashboardUC    *analytics.DashboardUseCase
	StatistiquesUC *analytics.StatistiquesUseCase
	QuittanceUC    *quittance.UseCase
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Biens
	biens := api.Group("/biens")
	bienHandler := NewBienHandler(deps.BienUC, deps.LocataireUC)
	biens.Post("/", bienHandler.Create)
	biens.Get("/", bienHandler.List)
	biens.Get("/:id", bienHandler.GetByID)
	biens.Put("/:id", bienHandler.Update)
	biens.Delete("/:id", bienHandler.Delete)
	biens.Get("/:id/locataires", bienHandler.ListLocataires)

	// Locataires
	locataires := api.Group("/locataires")
	locataireHandler := NewLocataireHandler(deps.LocataireUC, deps.PaiementUC)
	locataires.Post("/", locataireHandler.Create)
	locataires.Get("/", locataireHandler.List)
	locataires.Get("/:id", locataireHandler.GetByID)
	locataires.Put("/:id", locataireHandler.Update)
	locataires.Delete("/:id", locataireHandler.Delete)
	locataires.Get("/:id/paiements", locataireHandler.ListPaiements)

	// Paiements ("/categories" avant "/:id" pour ne pas capturer le littéral)
	paiements := api.Group("/paiements")
	paiementHandler := NewPaiementHandler(deps.PaiementUC)
	paiements.Post("/", paiementHandler.Create)
	paiements.Get("/", paiementHandler.List)
	paiements.Get("/categories", paiementHandler.Categories)
	paiements.Get("/:id", paiementHandler.GetByID)
	paiements.Put("/:id", paiementHandler.Update)
	paiements.Delete("/:id", paiementHandler.Delete)

	// Bailleur (enregistrement unique)
	bailleurHandler := NewBailleurHandler(deps.BailleurUC)
	api.Get("/bailleur", bailleurHandler.Get)
	api.Put("/bailleur", bailleurHandler.Save)

	// Tableau de bord et statistiques
	api.Get("/dashboard", NewDashboardHandler(deps.DashboardUC).GetSummary)
	api.Get("/statistiques", NewStatistiquesHandler(deps.StatistiquesUC).GetStatistiques)

	// Quittances
	quittanceHandler := NewQuittanceHandler(deps.QuittanceUC)
	api.Get("/quittances/:locataireID/:mois", quittanceHandler.Get)
	api.Get("/quittances/:locataireID/:mois/pdf", quittanceHandler.DownloadPDF)
}
