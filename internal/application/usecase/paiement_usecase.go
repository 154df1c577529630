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

// PaiementUseCase cas d'usage des paiements.
type PaiementUseCase struct {
	paiementRepo repository.PaiementRepository
}

// NewPaiementUseCase construit le cas d'usage.
func NewPaiementUseCase(paiementRepo repository.PaiementRepository) *PaiementUseCase {
	return &PaiementUseCase{paiementRepo: paiementRepo}
}

// Create valide et enregistre un nouveau paiement. Le format du mois concerné
// n'est pas contrôlé ici ; une chaîne non vide suffit (comportement d'origine,
// le contrôle se fait à la génération de quittance).
func (uc *PaiementUseCase) Create(in dto.PaiementRequest) (*dto.PaiementResponse, error) {
	input := paiementRequestToInput(in)
	if verr := rental.ValidatePaiement(input); verr != nil {
		return nil, verr
	}

	categorie := input.Categorie
	if categorie == "" {
		categorie = entity.CategorieLoyer
	}

	now := time.Now()
	paiement := &entity.Paiement{
		ID:           uuid.New().String(),
		LocataireID:  input.LocataireID,
		Montant:      *input.Montant,
		DatePaiement: *input.DatePaiement,
		MoisConcerne: input.MoisConcerne,
		Categorie:    categorie,
		ModePaiement: input.ModePaiement,
		Commentaire:  input.Commentaire,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.paiementRepo.Create(paiement); err != nil {
		return nil, err
	}
	return dto.FromPaiement(paiement), nil
}

// GetByID renvoie un paiement.
func (uc *PaiementUseCase) GetByID(id string) (*dto.PaiementResponse, error) {
	paiement, err := uc.paiementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if paiement == nil {
		return nil, domain.ErrNotFound
	}
	return dto.FromPaiement(paiement), nil
}

// List renvoie tous les paiements, du plus récent au plus ancien.
func (uc *PaiementUseCase) List() ([]*dto.PaiementResponse, error) {
	paiements, err := uc.paiementRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaiementResponse, 0, len(paiements))
	for _, p := range paiements {
		out = append(out, dto.FromPaiement(p))
	}
	return out, nil
}

// ListByLocataire renvoie les paiements d'un locataire, du plus récent au plus ancien.
func (uc *PaiementUseCase) ListByLocataire(locataireID string) ([]*dto.PaiementResponse, error) {
	paiements, err := uc.paiementRepo.ListByLocataire(locataireID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaiementResponse, 0, len(paiements))
	for _, p := range paiements {
		out = append(out, dto.FromPaiement(p))
	}
	return out, nil
}

// ListByMois renvoie les paiements de tous les locataires pour un jeton de
// mois, dans l'ordre chronologique de paiement. Le jeton n'est pas contrôlé :
// la comparaison est une égalité stricte de chaîne, comme à l'enregistrement.
func (uc *PaiementUseCase) ListByMois(mois string) ([]*dto.PaiementResponse, error) {
	paiements, err := uc.paiementRepo.ListByMois(mois)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaiementResponse, 0, len(paiements))
	for _, p := range paiements {
		out = append(out, dto.FromPaiement(p))
	}
	return out, nil
}

// Update valide et remplace les champs d'un paiement existant.
func (uc *PaiementUseCase) Update(id string, in dto.PaiementRequest) (*dto.PaiementResponse, error) {
	paiement, err := uc.paiementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if paiement == nil {
		return nil, domain.ErrNotFound
	}

	input := paiementRequestToInput(in)
	if verr := rental.ValidatePaiement(input); verr != nil {
		return nil, verr
	}

	categorie := input.Categorie
	if categorie == "" {
		categorie = entity.CategorieLoyer
	}

	paiement.LocataireID = input.LocataireID
	paiement.Montant = *input.Montant
	paiement.DatePaiement = *input.DatePaiement
	paiement.MoisConcerne = input.MoisConcerne
	paiement.Categorie = categorie
	paiement.ModePaiement = input.ModePaiement
	paiement.Commentaire = input.Commentaire
	paiement.UpdatedAt = time.Now()

	if err := uc.paiementRepo.Update(paiement); err != nil {
		return nil, err
	}
	return dto.FromPaiement(paiement), nil
}

// Delete supprime un paiement.
func (uc *PaiementUseCase) Delete(id string) error {
	paiement, err := uc.paiementRepo.GetByID(id)
	if err != nil {
		return err
	}
	if paiement == nil {
		return domain.ErrNotFound
	}
	return uc.paiementRepo.Delete(id)
}

// Categories renvoie le référentiel des catégories de paiement connues.
func (uc *PaiementUseCase) Categories() []dto.CategorieResponse {
	out := make([]dto.CategorieResponse, 0, len(entity.CategoriesPaiement))
	for _, c := range entity.CategoriesPaiement {
		out = append(out, dto.CategorieResponse{Code: c.Code, Label: c.Label})
	}
	return out
}

func paiementRequestToInput(in dto.PaiementRequest) rental.PaiementInput {
	return rental.PaiementInput{
		LocataireID:  in.LocataireID,
		Montant:      in.Montant,
		DatePaiement: parseDate(in.DatePaiement),
		MoisConcerne: in.MoisConcerne,
		Categorie:    in.Categorie,
		ModePaiement: in.ModePaiement,
		Commentaire:  in.Commentaire,
	}
}
