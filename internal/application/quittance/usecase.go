// Package quittance assemble les données d'une quittance de loyer : les
// paiements d'un locataire pour un mois concerné, groupés par catégorie,
// avec le bailleur en en-tête et le total du mois.
package quittance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tmercier/gestion-locative-api/internal/application/dto"
	"github.com/tmercier/gestion-locative-api/internal/domain"
	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
	"github.com/tmercier/gestion-locative-api/internal/domain/rental"
	"github.com/tmercier/gestion-locative-api/internal/domain/repository"
)

// UseCase assemble la quittance et, sur demande, son PDF.
type UseCase struct {
	locataireRepo repository.LocataireRepository
	bienRepo      repository.BienRepository
	bailleurRepo  repository.BailleurRepository
	paiementRepo  repository.PaiementRepository
	generator     QuittancePDFGenerator
}

// NewUseCase construit le cas d'usage.
func NewUseCase(
	locataireRepo repository.LocataireRepository,
	bienRepo repository.BienRepository,
	bailleurRepo repository.BailleurRepository,
	paiementRepo repository.PaiementRepository,
	generator QuittancePDFGenerator,
) *UseCase {
	return &UseCase{
		locataireRepo: locataireRepo,
		bienRepo:      bienRepo,
		bailleurRepo:  bailleurRepo,
		paiementRepo:  paiementRepo,
		generator:     generator,
	}
}

// Build assemble la quittance d'un locataire pour un jeton de mois AAAA-MM.
//
// Retourne :
//   - domain.ErrNotFound si le locataire n'existe pas ;
//   - rental.ErrFormatMois si le jeton de mois est mal formé ;
//   - sinon la structure complète, seule sortie de l'assemblage (le rendu
//     est l'affaire d'un collaborateur externe).
func (uc *UseCase) Build(ctx context.Context, locataireID, mois string) (*dto.QuittanceResponse, error) {
	locataire, err := uc.locataireRepo.GetByID(locataireID)
	if err != nil {
		return nil, fmt.Errorf("quittance: obtenir locataire: %w", err)
	}
	if locataire == nil {
		return nil, domain.ErrNotFound
	}

	annee, moisNum, err := rental.ParseMois(mois)
	if err != nil {
		return nil, err
	}

	bailleur, err := uc.bailleurRepo.GetFirst()
	if err != nil {
		return nil, fmt.Errorf("quittance: obtenir bailleur: %w", err)
	}
	paiements, err := uc.paiementRepo.ListByLocataireEtMois(locataireID, mois)
	if err != nil {
		return nil, fmt.Errorf("quittance: paiements du mois: %w", err)
	}

	charges := decimal.Zero
	if bien, err := uc.bienRepo.GetByID(locataire.BienID); err != nil {
		return nil, fmt.Errorf("quittance: obtenir bien: %w", err)
	} else if bien != nil {
		charges = bien.ChargesMensuelles
	}

	parCategorie := make(map[string][]dto.PaiementResponse)
	paiementsResp := make([]dto.PaiementResponse, 0, len(paiements))
	total := decimal.Zero
	for _, p := range paiements {
		resp := *dto.FromPaiement(p)
		paiementsResp = append(paiementsResp, resp)
		parCategorie[p.Categorie] = append(parCategorie[p.Categorie], resp)
		total = total.Add(p.Montant)
	}

	return &dto.QuittanceResponse{
		Locataire:        *dto.FromLocataire(locataire, charges),
		Bailleur:         dto.FromBailleur(bailleur),
		Paiements:        paiementsResp,
		ParCategorie:     parCategorie,
		Total:            total,
		CategoriesLabels: entity.CategorieLabels(),
		Mois:             mois,
		MoisNom:          rental.MoisNoms[moisNum],
		Annee:            annee,
		DateGeneration:   time.Now(),
	}, nil
}

// DownloadPDF assemble la quittance puis la rend en PDF.
// Renvoie les octets du document et un nom de fichier de téléchargement.
func (uc *UseCase) DownloadPDF(ctx context.Context, locataireID, mois string) (pdfBytes []byte, filename string, err error) {
	data, err := uc.Build(ctx, locataireID, mois)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateQuittancePDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("quittance: générer PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("quittance_%s.pdf", mois), nil
}
