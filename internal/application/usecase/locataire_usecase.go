package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tmercier/gestion-locative-api/internal/application/dto"
	"github.com/tmercier/gestion-locative-api/internal/domain"
	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
	"github.com/tmercier/gestion-locative-api/internal/domain/rental"
	"github.com/tmercier/gestion-locative-api/internal/domain/repository"
)

// LocataireUseCase cas d'usage des locataires.
type LocataireUseCase struct {
	locataireRepo repository.LocataireRepository
	bienRepo      repository.BienRepository
	txRunner      LocataireTxRunner
}

// NewLocataireUseCase construit le cas d'usage.
func NewLocataireUseCase(
	locataireRepo repository.LocataireRepository,
	bienRepo repository.BienRepository,
	txRunner LocataireTxRunner,
) *LocataireUseCase {
	return &LocataireUseCase{locataireRepo: locataireRepo, bienRepo: bienRepo, txRunner: txRunner}
}

// Create valide et enregistre un nouveau locataire. Le locataire est créé
// actif. Un seul locataire actif est admis par bien : l'activation échoue
// avec un conflit si le bien en a déjà un.
func (uc *LocataireUseCase) Create(in dto.LocataireRequest) (*dto.LocataireResponse, error) {
	input := locataireRequestToInput(in)

	bien, err := uc.resoudreBien(input.BienID)
	if err != nil {
		return nil, err
	}
	if verr := rental.ValidateLocataire(input, bien); verr != nil {
		return nil, verr
	}

	depot := decimal.Zero
	if input.DepotGarantie != nil {
		depot = *input.DepotGarantie
	}
	jour := 1
	if input.JourPaiement != nil {
		jour = *input.JourPaiement
	}

	now := time.Now()
	locataire := &entity.Locataire{
		ID:            uuid.New().String(),
		Nom:           input.Nom,
		Prenom:        input.Prenom,
		Email:         input.Email,
		Telephone:     input.Telephone,
		DateNaissance: input.DateNaissance,
		RaisonSociale: input.RaisonSociale,
		SIRET:         input.SIRET,
		Dirigeant:     input.Dirigeant,
		BienID:        input.BienID,
		DateDebutBail: *input.DateDebutBail,
		DateFinBail:   input.DateFinBail,
		LoyerMensuel:  *input.LoyerMensuel,
		DepotGarantie: depot,
		JourPaiement:  jour,
		Actif:         true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// Le contrôle d'unicité et l'insertion partagent la même transaction :
	// deux créations concurrentes sur le même bien ne peuvent pas passer
	// toutes les deux.
	err = uc.txRunner.Run(context.Background(), func(repo repository.LocataireRepository) error {
		if err := verifierUnicite(repo, input.BienID, ""); err != nil {
			return err
		}
		return repo.Create(locataire)
	})
	if err != nil {
		return nil, err
	}
	return dto.FromLocataire(locataire, bien.ChargesMensuelles), nil
}

// GetByID renvoie un locataire.
func (uc *LocataireUseCase) GetByID(id string) (*dto.LocataireResponse, error) {
	locataire, err := uc.locataireRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if locataire == nil {
		return nil, domain.ErrNotFound
	}
	charges, err := uc.chargesDuBien(locataire.BienID)
	if err != nil {
		return nil, err
	}
	return dto.FromLocataire(locataire, charges), nil
}

// List renvoie les locataires ; actifsSeulement restreint aux baux actifs.
func (uc *LocataireUseCase) List(actifsSeulement bool) ([]*dto.LocataireResponse, error) {
	locataires, err := uc.locataireRepo.List(actifsSeulement)
	if err != nil {
		return nil, err
	}
	chargesParBien, err := uc.chargesParBien()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LocataireResponse, 0, len(locataires))
	for _, l := range locataires {
		out = append(out, dto.FromLocataire(l, chargesParBien[l.BienID]))
	}
	return out, nil
}

// ListByBien renvoie l'historique des locataires d'un bien, dans l'ordre
// d'enregistrement. Renvoie ErrNotFound si le bien n'existe pas, pour
// distinguer un bien inconnu d'un bien sans locataire.
func (uc *LocataireUseCase) ListByBien(bienID string) ([]*dto.LocataireResponse, error) {
	bien, err := uc.bienRepo.GetByID(bienID)
	if err != nil {
		return nil, err
	}
	if bien == nil {
		return nil, domain.ErrNotFound
	}
	locataires, err := uc.locataireRepo.ListByBien(bienID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LocataireResponse, 0, len(locataires))
	for _, l := range locataires {
		out = append(out, dto.FromLocataire(l, bien.ChargesMensuelles))
	}
	return out, nil
}

// Update valide et remplace les champs d'un locataire existant, y compris le
// drapeau actif.
func (uc *LocataireUseCase) Update(id string, in dto.LocataireRequest) (*dto.LocataireResponse, error) {
	locataire, err := uc.locataireRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if locataire == nil {
		return nil, domain.ErrNotFound
	}

	input := locataireRequestToInput(in)
	bien, err := uc.resoudreBien(input.BienID)
	if err != nil {
		return nil, err
	}
	if verr := rental.ValidateLocataire(input, bien); verr != nil {
		return nil, verr
	}

	actif := locataire.Actif
	if in.Actif != nil {
		actif = *in.Actif
	}

	depot := decimal.Zero
	if input.DepotGarantie != nil {
		depot = *input.DepotGarantie
	}
	jour := 1
	if input.JourPaiement != nil {
		jour = *input.JourPaiement
	}

	locataire.Nom = input.Nom
	locataire.Prenom = input.Prenom
	locataire.Email = input.Email
	locataire.Telephone = input.Telephone
	locataire.DateNaissance = input.DateNaissance
	locataire.RaisonSociale = input.RaisonSociale
	locataire.SIRET = input.SIRET
	locataire.Dirigeant = input.Dirigeant
	locataire.BienID = input.BienID
	locataire.DateDebutBail = *input.DateDebutBail
	locataire.DateFinBail = input.DateFinBail
	locataire.LoyerMensuel = *input.LoyerMensuel
	locataire.DepotGarantie = depot
	locataire.JourPaiement = jour
	locataire.Actif = actif
	locataire.UpdatedAt = time.Now()

	// Même unité atomique qu'à la création : le contrôle d'unicité (quand le
	// locataire reste ou devient actif) et la mise à jour vont ensemble.
	err = uc.txRunner.Run(context.Background(), func(repo repository.LocataireRepository) error {
		if actif {
			if err := verifierUnicite(repo, input.BienID, id); err != nil {
				return err
			}
		}
		return repo.Update(locataire)
	})
	if err != nil {
		return nil, err
	}
	return dto.FromLocataire(locataire, bien.ChargesMensuelles), nil
}

// Delete supprime un locataire. Ses paiements sont supprimés en cascade.
func (uc *LocataireUseCase) Delete(id string) error {
	locataire, err := uc.locataireRepo.GetByID(id)
	if err != nil {
		return err
	}
	if locataire == nil {
		return domain.ErrNotFound
	}
	return uc.locataireRepo.Delete(id)
}

// resoudreBien renvoie le bien référencé, ou nil sans erreur si l'identifiant
// est vide ou inconnu (la validation produit alors le message adapté).
func (uc *LocataireUseCase) resoudreBien(bienID string) (*entity.Bien, error) {
	if bienID == "" {
		return nil, nil
	}
	return uc.bienRepo.GetByID(bienID)
}

// verifierUnicite refuse l'activation quand le bien a déjà un autre locataire
// actif (exceptID exclut le locataire en cours de modification). S'exécute sur
// le repo attaché à la transaction en cours.
func verifierUnicite(repo repository.LocataireRepository, bienID, exceptID string) error {
	actuel, err := repo.GetActifByBien(bienID)
	if err != nil {
		return err
	}
	if actuel != nil && actuel.ID != exceptID {
		return fmt.Errorf("%w : un locataire actif est déjà rattaché à ce bien", domain.ErrConflict)
	}
	return nil
}

func (uc *LocataireUseCase) chargesDuBien(bienID string) (decimal.Decimal, error) {
	bien, err := uc.bienRepo.GetByID(bienID)
	if err != nil {
		return decimal.Zero, err
	}
	if bien == nil {
		return decimal.Zero, nil
	}
	return bien.ChargesMensuelles, nil
}

func (uc *LocataireUseCase) chargesParBien() (map[string]decimal.Decimal, error) {
	biens, err := uc.bienRepo.List()
	if err != nil {
		return nil, err
	}
	charges := make(map[string]decimal.Decimal, len(biens))
	for _, b := range biens {
		charges[b.ID] = b.ChargesMensuelles
	}
	return charges, nil
}

func locataireRequestToInput(in dto.LocataireRequest) rental.LocataireInput {
	return rental.LocataireInput{
		Nom:           in.Nom,
		Prenom:        in.Prenom,
		Email:         in.Email,
		Telephone:     in.Telephone,
		DateNaissance: parseDate(in.DateNaissance),
		RaisonSociale: in.RaisonSociale,
		SIRET:         in.SIRET,
		Dirigeant:     in.Dirigeant,
		BienID:        in.BienID,
		DateDebutBail: parseDate(in.DateDebutBail),
		DateFinBail:   parseDate(in.DateFinBail),
		LoyerMensuel:  in.LoyerMensuel,
		DepotGarantie: in.DepotGarantie,
		JourPaiement:  in.JourPaiement,
	}
}
