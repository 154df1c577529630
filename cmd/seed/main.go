// Commande seed : insère un jeu de données de démonstration (deux biens).
// Ne fait rien si le parc contient déjà des biens.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
	"github.com/tmercier/gestion-locative-api/internal/infrastructure/postgres"
	"github.com/tmercier/gestion-locative-api/pkg/config"
	"github.com/tmercier/gestion-locative-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration : " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migration du schéma")
	}

	bienRepo := postgres.NewBienRepository(pool)
	existants, err := bienRepo.List()
	if err != nil {
		log.Fatal().Err(err).Msg("lecture du parc")
	}
	if len(existants) > 0 {
		log.Info().Int("biens", len(existants)).Msg("parc non vide, seed ignoré")
		return
	}

	now := time.Now()
	surfaceAppart := 65.0
	surfaceLocal := 120.0
	biens := []*entity.Bien{
		{
			ID:                uuid.New().String(),
			Nom:               "Appartement Centre-Ville",
			TypeBien:          entity.TypeBienAppartement,
			Adresse:           "12 rue de la République, 69001 Lyon",
			Surface:           &surfaceAppart,
			Description:       "T3 lumineux au 2e étage, proche commodités.",
			ChargesMensuelles: decimal.NewFromInt(80),
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		{
			ID:                uuid.New().String(),
			Nom:               "Local Commercial Rue du Commerce",
			TypeBien:          entity.TypeBienLocalCommercial,
			Adresse:           "4 rue du Commerce, 69002 Lyon",
			Surface:           &surfaceLocal,
			Description:       "Local en rez-de-chaussée avec vitrine.",
			ChargesMensuelles: decimal.NewFromInt(150),
			CreatedAt:         now,
			UpdatedAt:         now,
		},
	}

	for _, b := range biens {
		if err := bienRepo.Create(b); err != nil {
			log.Fatal().Err(err).Str("bien", b.Nom).Msg("insertion du bien")
		}
		log.Info().Str("bien", b.Nom).Str("id", b.ID).Msg("bien créé")
	}
	log.Info().Msg("seed terminé")
}
