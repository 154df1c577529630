package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmercier/gestion-locative-api/internal/application/usecase"
	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
)

// fakePaiementRepo double en mémoire du port des paiements.
type fakePaiementRepo struct {
	paiements []*entity.Paiement
}

func (r *fakePaiementRepo) Create(p *entity.Paiement) error {
	r.paiements = append(r.paiements, p)
	return nil
}

func (r *fakePaiementRepo) GetByID(id string) (*entity.Paiement, error) {
	for _, p := range r.paiements {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePaiementRepo) List() ([]*entity.Paiement, error) { return r.paiements, nil }

func (r *fakePaiementRepo) ListByLocataire(locataireID string) ([]*entity.Paiement, error) {
	var out []*entity.Paiement
	for _, p := range r.paiements {
		if p.LocataireID == locataireID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaiementRepo) ListByLocataireEtMois(locataireID, mois string) ([]*entity.Paiement, error) {
	var out []*entity.Paiement
	for _, p := range r.paiements {
		if p.LocataireID == locataireID && p.MoisConcerne == mois {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaiementRepo) ListByMois(mois string) ([]*entity.Paiement, error) {
	var out []*entity.Paiement
	for _, p := range r.paiements {
		if p.MoisConcerne == mois {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaiementRepo) Update(*entity.Paiement) error { return nil }
func (r *fakePaiementRepo) Delete(string) error           { return nil }

func paiementDuMois(id, locataireID, mois string, montant int64) *entity.Paiement {
	return &entity.Paiement{
		ID: id, LocataireID: locataireID,
		Montant:      decimal.NewFromInt(montant),
		DatePaiement: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		MoisConcerne: mois,
		Categorie:    entity.CategorieLoyer,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ListByMois — paiements de tous les locataires pour un mois concerné
// ──────────────────────────────────────────────────────────────────────────────

func TestListByMois_FiltreSurLeJetonExact(t *testing.T) {
	repo := &fakePaiementRepo{paiements: []*entity.Paiement{
		paiementDuMois("p1", "l1", "2024-03", 750),
		paiementDuMois("p2", "l2", "2024-03", 600),
		paiementDuMois("p3", "l1", "2024-02", 750),
	}}
	uc := usecase.NewPaiementUseCase(repo)

	out, err := uc.ListByMois("2024-03")
	require.NoError(t, err)
	require.Len(t, out, 2, "seuls les paiements du mois demandé sont retenus")
	assert.Equal(t, "l1", out[0].LocataireID)
	assert.Equal(t, "l2", out[1].LocataireID)
}

// La comparaison est une égalité stricte de chaîne, comme à l'enregistrement :
// un jeton mal formé renvoie simplement une liste vide.
func TestListByMois_JetonInconnuListeVide(t *testing.T) {
	repo := &fakePaiementRepo{paiements: []*entity.Paiement{
		paiementDuMois("p1", "l1", "2024-03", 750),
	}}
	uc := usecase.NewPaiementUseCase(repo)

	out, err := uc.ListByMois("mars 2024")
	require.NoError(t, err)
	assert.Empty(t, out)
}
