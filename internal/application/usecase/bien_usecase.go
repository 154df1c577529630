// Package usecase contient les cas d'usage CRUD de la gestion locative.
package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tmercier/gestion-locative-api/internal/application/dto"
	"github.com/tmercier/gestion-locative-api/internal/domain"
	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
	"github.com/tmercier/gestion-locative-api/internal/domain/rental"
	"github.com/tmercier/gestion-locative-api/internal/domain/repository"
)

// BienUseCase cas d'usage des biens immobiliers.
type BienUseCase struct {
	bienRepo      repository.BienRepository
	locataireRepo repository.LocataireRepository
}

// NewBienUseCase construit le cas d'usage.
func NewBienUseCase(bienRepo repository.BienRepository, locataireRepo repository.LocataireRepository) *BienUseCase {
	return &BienUseCase{bienRepo: bienRepo, locataireRepo: locataireRepo}
}

// Create valide et enregistre un nouveau bien.
func (uc *BienUseCase) Create(in dto.BienRequest) (*dto.BienResponse, error) {
	input := bienRequestToInput(in)
	if verr := rental.ValidateBien(input); verr != nil {
		return nil, verr
	}

	charges := decimal.Zero
	if input.ChargesMensuelles != nil {
		charges = *input.ChargesMensuelles
	}

	now := time.Now()
	bien := &entity.Bien{
		ID:                uuid.New().String(),
		Nom:               input.Nom,
		TypeBien:          input.TypeBien,
		Adresse:           input.Adresse,
		Surface:           input.Surface,
		Description:       input.Description,
		ChargesMensuelles: charges,
		DateAcquisition:   input.DateAcquisition,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.bienRepo.Create(bien); err != nil {
		return nil, err
	}
	return dto.FromBien(bien, nil), nil
}

// GetByID renvoie un bien avec son locataire actuel (premier locataire actif).
func (uc *BienUseCase) GetByID(id string) (*dto.BienResponse, error) {
	bien, err := uc.bienRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bien == nil {
		return nil, domain.ErrNotFound
	}
	actuel, err := uc.locataireRepo.GetActifByBien(bien.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromBien(bien, dto.FromLocataire(actuel, bien.ChargesMensuelles)), nil
}

// List renvoie tous les biens avec leur locataire actuel.
func (uc *BienUseCase) List() ([]*dto.BienResponse, error) {
	biens, err := uc.bienRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BienResponse, 0, len(biens))
	for _, bien := range biens {
		actuel, err := uc.locataireRepo.GetActifByBien(bien.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.FromBien(bien, dto.FromLocataire(actuel, bien.ChargesMensuelles)))
	}
	return out, nil
}

// Update valide et remplace les champs modifiables d'un bien existant.
func (uc *BienUseCase) Update(id string, in dto.BienRequest) (*dto.BienResponse, error) {
	bien, err := uc.bienRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bien == nil {
		return nil, domain.ErrNotFound
	}

	input := bienRequestToInput(in)
	if verr := rental.ValidateBien(input); verr != nil {
		return nil, verr
	}

	charges := decimal.Zero
	if input.ChargesMensuelles != nil {
		charges = *input.ChargesMensuelles
	}

	bien.Nom = input.Nom
	bien.TypeBien = input.TypeBien
	bien.Adresse = input.Adresse
	bien.Surface = input.Surface
	bien.Description = input.Description
	bien.ChargesMensuelles = charges
	bien.DateAcquisition = input.DateAcquisition
	bien.UpdatedAt = time.Now()

	if err := uc.bienRepo.Update(bien); err != nil {
		return nil, err
	}
	actuel, err := uc.locataireRepo.GetActifByBien(bien.ID)
	if err != nil {
		return nil, err
	}
	return dto.FromBien(bien, dto.FromLocataire(actuel, bien.ChargesMensuelles)), nil
}

// Delete supprime un bien. Les locataires rattachés et leurs paiements sont
// supprimés en cascade par la base.
func (uc *BienUseCase) Delete(id string) error {
	bien, err := uc.bienRepo.GetByID(id)
	if err != nil {
		return err
	}
	if bien == nil {
		return domain.ErrNotFound
	}
	return uc.bienRepo.Delete(id)
}

func bienRequestToInput(in dto.BienRequest) rental.BienInput {
	return rental.BienInput{
		Nom:               in.Nom,
		TypeBien:          in.TypeBien,
		Adresse:           in.Adresse,
		Surface:           in.Surface,
		Description:       in.Description,
		ChargesMensuelles: in.ChargesMensuelles,
		DateAcquisition:   parseDate(in.DateAcquisition),
	}
}

// parseDate lit une date de formulaire AAAA-MM-JJ. Une chaîne vide ou
// illisible vaut absence, comme dans la saisie d'origine.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
