package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crée le schéma au démarrage s'il n'existe pas, puis applique le
// correctif additif des colonnes de locataire professionnel (mise à niveau
// en place des bases antérieures). Idempotent, additif uniquement : pas de
// framework de migration.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS biens (
			id                 UUID PRIMARY KEY,
			nom                VARCHAR(100) NOT NULL,
			type_bien          VARCHAR(50)  NOT NULL,
			adresse            VARCHAR(200) NOT NULL,
			surface            DOUBLE PRECISION,
			description        TEXT NOT NULL DEFAULT '',
			charges_mensuelles NUMERIC(12,2) NOT NULL DEFAULT 0,
			date_acquisition   DATE,
			created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS locataires (
			id              UUID PRIMARY KEY,
			nom             VARCHAR(100) NOT NULL,
			prenom          VARCHAR(100) NOT NULL DEFAULT '',
			email           VARCHAR(120) NOT NULL DEFAULT '',
			telephone       VARCHAR(20)  NOT NULL DEFAULT '',
			date_naissance  DATE,
			bien_id         UUID NOT NULL REFERENCES biens(id) ON DELETE CASCADE,
			date_debut_bail DATE NOT NULL,
			date_fin_bail   DATE,
			loyer_mensuel   NUMERIC(12,2) NOT NULL,
			depot_garantie  NUMERIC(12,2) NOT NULL DEFAULT 0,
			jour_paiement   INTEGER NOT NULL DEFAULT 1,
			actif           BOOLEAN NOT NULL DEFAULT TRUE,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS bailleurs (
			id          UUID PRIMARY KEY,
			nom         VARCHAR(200) NOT NULL,
			adresse     VARCHAR(500) NOT NULL,
			code_postal VARCHAR(10)  NOT NULL DEFAULT '',
			ville       VARCHAR(100) NOT NULL DEFAULT '',
			telephone   VARCHAR(20)  NOT NULL DEFAULT '',
			email       VARCHAR(120) NOT NULL DEFAULT '',
			siret       VARCHAR(20)  NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS paiements (
			id                UUID PRIMARY KEY,
			locataire_id      UUID NOT NULL REFERENCES locataires(id) ON DELETE CASCADE,
			montant           NUMERIC(12,2) NOT NULL,
			date_paiement     DATE NOT NULL,
			mois_concerne     VARCHAR(7) NOT NULL,
			categorie         VARCHAR(50) NOT NULL DEFAULT 'loyer',
			mode_paiement     VARCHAR(50) NOT NULL DEFAULT '',
			commentaire       TEXT NOT NULL DEFAULT '',
			quittance_generee BOOLEAN NOT NULL DEFAULT FALSE,
			created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_locataires_bien ON locataires (bien_id)`,
		`CREATE INDEX IF NOT EXISTS idx_paiements_locataire ON paiements (locataire_id)`,
		`CREATE INDEX IF NOT EXISTS idx_paiements_mois ON paiements (mois_concerne)`,

		// Colonnes de locataire professionnel : absentes des bases créées
		// avant leur introduction, ajoutées ici sans toucher aux données.
		`ALTER TABLE locataires ADD COLUMN IF NOT EXISTS raison_sociale VARCHAR(200)`,
		`ALTER TABLE locataires ADD COLUMN IF NOT EXISTS siret VARCHAR(14)`,
		`ALTER TABLE locataires ADD COLUMN IF NOT EXISTS dirigeant VARCHAR(200)`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration schéma: %w", err)
		}
	}
	return nil
}
