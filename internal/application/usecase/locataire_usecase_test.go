package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmercier/gestion-locative-api/internal/application/dto"
	"github.com/tmercier/gestion-locative-api/internal/application/usecase"
	"github.com/tmercier/gestion-locative-api/internal/domain"
	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
	"github.com/tmercier/gestion-locative-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doubles en mémoire des ports de persistance
// ──────────────────────────────────────────────────────────────────────────────

// fakeLocataireRepo conserve l'ordre d'insertion, comme l'ORDER BY created_at
// de l'adaptateur PostgreSQL.
type fakeLocataireRepo struct {
	locataires []*entity.Locataire
}

func (r *fakeLocataireRepo) Create(l *entity.Locataire) error {
	r.locataires = append(r.locataires, l)
	return nil
}

func (r *fakeLocataireRepo) GetByID(id string) (*entity.Locataire, error) {
	for _, l := range r.locataires {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLocataireRepo) List(actifsSeulement bool) ([]*entity.Locataire, error) {
	var out []*entity.Locataire
	for _, l := range r.locataires {
		if !actifsSeulement || l.Actif {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLocataireRepo) ListByBien(bienID string) ([]*entity.Locataire, error) {
	var out []*entity.Locataire
	for _, l := range r.locataires {
		if l.BienID == bienID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *fakeLocataireRepo) GetActifByBien(bienID string) (*entity.Locataire, error) {
	for _, l := range r.locataires {
		if l.BienID == bienID && l.Actif {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLocataireRepo) Update(locataire *entity.Locataire) error {
	for i, l := range r.locataires {
		if l.ID == locataire.ID {
			r.locataires[i] = locataire
			return nil
		}
	}
	return nil
}

func (r *fakeLocataireRepo) Delete(id string) error {
	for i, l := range r.locataires {
		if l.ID == id {
			r.locataires = append(r.locataires[:i], r.locataires[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeBienRepo struct {
	biens map[string]*entity.Bien
}

func (r *fakeBienRepo) Create(b *entity.Bien) error             { r.biens[b.ID] = b; return nil }
func (r *fakeBienRepo) GetByID(id string) (*entity.Bien, error) { return r.biens[id], nil }
func (r *fakeBienRepo) List() ([]*entity.Bien, error) {
	var out []*entity.Bien
	for _, b := range r.biens {
		out = append(out, b)
	}
	return out, nil
}
func (r *fakeBienRepo) Update(*entity.Bien) error { return nil }
func (r *fakeBienRepo) Delete(string) error       { return nil }

// fakeTxRunner exécute le callback avec le repo partagé et compte les
// transactions ouvertes : le contrôle d'unicité et l'écriture doivent passer
// par le repo remis par le runner.
type fakeTxRunner struct {
	repo repository.LocataireRepository
	runs int
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.LocataireRepository) error) error {
	r.runs++
	return fn(r.repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func locataireActif(id, bienID string) *entity.Locataire {
	return &entity.Locataire{
		ID: id, Nom: "Martin", Prenom: "Sophie", BienID: bienID,
		LoyerMensuel: decimal.NewFromInt(750), Actif: true,
	}
}

func requeteParticulier(bienID string) dto.LocataireRequest {
	return dto.LocataireRequest{
		Nom: "Durand", Prenom: "Paul", BienID: bienID,
		DateDebutBail: "2024-01-01", LoyerMensuel: decPtr(700),
	}
}

func buildLocataireUseCase(existants ...*entity.Locataire) (*usecase.LocataireUseCase, *fakeLocataireRepo, *fakeTxRunner) {
	locataireRepo := &fakeLocataireRepo{locataires: existants}
	bienRepo := &fakeBienRepo{biens: map[string]*entity.Bien{
		"b1": {ID: "b1", Nom: "Appartement Centre-Ville", TypeBien: entity.TypeBienAppartement,
			ChargesMensuelles: decimal.NewFromInt(80)},
	}}
	runner := &fakeTxRunner{repo: locataireRepo}
	return usecase.NewLocataireUseCase(locataireRepo, bienRepo, runner), locataireRepo, runner
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — unicité du locataire actif, dans la transaction
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_RefuseUnDeuxiemeLocataireActif(t *testing.T) {
	uc, repo, runner := buildLocataireUseCase(locataireActif("l1", "b1"))

	_, err := uc.Create(requeteParticulier("b1"))
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, repo.locataires, 1, "le refus ne doit rien écrire")
	assert.Equal(t, 1, runner.runs, "le contrôle d'unicité doit se faire dans la transaction")
}

func TestCreate_EcritDansLaTransaction(t *testing.T) {
	uc, repo, runner := buildLocataireUseCase()

	out, err := uc.Create(requeteParticulier("b1"))
	require.NoError(t, err)

	assert.Equal(t, 1, runner.runs)
	require.Len(t, repo.locataires, 1)
	assert.True(t, out.Actif, "un locataire créé est actif")
	assert.True(t, decimal.NewFromInt(780).Equal(out.LoyerTotal),
		"le loyer total doit intégrer les charges du bien")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — réactivation soumise au même contrôle
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_RefuseLaReactivationSiLeBienEstOccupe(t *testing.T) {
	inactif := locataireActif("l2", "b1")
	inactif.Actif = false
	uc, _, _ := buildLocataireUseCase(locataireActif("l1", "b1"), inactif)

	in := requeteParticulier("b1")
	actif := true
	in.Actif = &actif

	_, err := uc.Update("l2", in)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Le locataire actif du bien peut être modifié sans se bloquer lui-même.
func TestUpdate_LeLocataireActifPeutEtreModifie(t *testing.T) {
	uc, _, runner := buildLocataireUseCase(locataireActif("l1", "b1"))

	out, err := uc.Update("l1", requeteParticulier("b1"))
	require.NoError(t, err)
	assert.Equal(t, "Durand", out.Nom)
	assert.Equal(t, 1, runner.runs)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListByBien — historique des locataires d'un bien
// ──────────────────────────────────────────────────────────────────────────────

func TestListByBien_BienInconnu(t *testing.T) {
	uc, _, _ := buildLocataireUseCase()

	_, err := uc.ListByBien("inconnu")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByBien_HistoriqueAvecCharges(t *testing.T) {
	ancien := locataireActif("l0", "b1")
	ancien.Actif = false
	uc, _, _ := buildLocataireUseCase(ancien, locataireActif("l1", "b1"))

	out, err := uc.ListByBien("b1")
	require.NoError(t, err)
	require.Len(t, out, 2, "l'historique inclut les baux terminés")
	assert.Equal(t, "l0", out[0].ID, "ordre d'enregistrement conservé")
	assert.True(t, decimal.NewFromInt(830).Equal(out[1].LoyerTotal))
}
