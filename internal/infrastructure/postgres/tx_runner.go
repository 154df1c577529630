package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tmercier/gestion-locative-api/internal/application/usecase"
	"github.com/tmercier/gestion-locative-api/internal/domain/repository"
)

var _ usecase.LocataireTxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks dans une transaction PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner avec le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run démarre une transaction, exécute fn avec un repo des locataires attaché
// à cette transaction, puis Commit — ou Rollback si fn échoue.
func (r *TxRunner) Run(ctx context.Context, fn func(locataireRepo repository.LocataireRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewLocataireRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
