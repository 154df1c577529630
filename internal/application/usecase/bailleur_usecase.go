package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tmercier/gestion-locative-api/internal/application/dto"
	"github.com/tmercier/gestion-locative-api/internal/domain"
	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
	"github.com/tmercier/gestion-locative-api/internal/domain/rental"
	"github.com/tmercier/gestion-locative-api/internal/domain/repository"
)

// BailleurUseCase cas d'usage du bailleur : accès au seul enregistrement
// exploité, avec sémantique create-or-update.
type BailleurUseCase struct {
	bailleurRepo repository.BailleurRepository
}

// NewBailleurUseCase construit le cas d'usage.
func NewBailleurUseCase(bailleurRepo repository.BailleurRepository) *BailleurUseCase {
	return &BailleurUseCase{bailleurRepo: bailleurRepo}
}

// Get renvoie le bailleur enregistré, ou domain.ErrNotFound s'il n'a jamais
// été renseigné.
func (uc *BailleurUseCase) Get() (*dto.BailleurResponse, error) {
	bailleur, err := uc.bailleurRepo.GetFirst()
	if err != nil {
		return nil, err
	}
	if bailleur == nil {
		return nil, domain.ErrNotFound
	}
	return dto.FromBailleur(bailleur), nil
}

// Save enregistre les paramètres du bailleur : mise à jour de l'enregistrement
// existant ou création du premier.
func (uc *BailleurUseCase) Save(in dto.BailleurRequest) (*dto.BailleurResponse, error) {
	if verr := rental.ValidateBailleur(in.Nom, in.Adresse); verr != nil {
		return nil, verr
	}

	bailleur, err := uc.bailleurRepo.GetFirst()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if bailleur == nil {
		bailleur = &entity.Bailleur{
			ID:        uuid.New().String(),
			CreatedAt: now,
		}
		applyBailleurRequest(bailleur, in, now)
		if err := uc.bailleurRepo.Create(bailleur); err != nil {
			return nil, err
		}
		return dto.FromBailleur(bailleur), nil
	}

	applyBailleurRequest(bailleur, in, now)
	if err := uc.bailleurRepo.Update(bailleur); err != nil {
		return nil, err
	}
	return dto.FromBailleur(bailleur), nil
}

func applyBailleurRequest(b *entity.Bailleur, in dto.BailleurRequest, now time.Time) {
	b.Nom = in.Nom
	b.Adresse = in.Adresse
	b.CodePostal = in.CodePostal
	b.Ville = in.Ville
	b.Telephone = in.Telephone
	b.Email = in.Email
	b.SIRET = in.SIRET
	b.UpdatedAt = now
}
