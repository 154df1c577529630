package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tmercier/gestion-locative-api/internal/application/dto"
	"github.com/tmercier/gestion-locative-api/internal/domain/rental"
	"github.com/tmercier/gestion-locative-api/internal/domain/repository"
)

// StatistiquesUseCase produit la série des revenus des 12 derniers mois et
// le total perçu par bien via son locataire actuel.
type StatistiquesUseCase struct {
	bienRepo      repository.BienRepository
	locataireRepo repository.LocataireRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewStatistiquesUseCase construit le cas d'usage.
func NewStatistiquesUseCase(
	bienRepo repository.BienRepository,
	locataireRepo repository.LocataireRepository,
	analyticsRepo repository.AnalyticsRepository,
) *StatistiquesUseCase {
	return &StatistiquesUseCase{
		bienRepo:      bienRepo,
		locataireRepo: locataireRepo,
		analyticsRepo: analyticsRepo,
	}
}

// GetStatistiques assemble la réponse de la page statistiques.
func (uc *StatistiquesUseCase) GetStatistiques(ctx context.Context) (*dto.StatistiquesResponse, error) {
	today := time.Now()
	fenetre := rental.FenetreDouzeMois(today)

	totauxParMois, err := uc.analyticsRepo.TotalPercuParMois(ctx, fenetre[0].Token)
	if err != nil {
		return nil, fmt.Errorf("statistiques: revenus par mois: %w", err)
	}
	serie := ComputeSerieRevenus(fenetre, totauxParMois)

	totauxParLocataire, err := uc.analyticsRepo.TotauxParLocataire(ctx)
	if err != nil {
		return nil, fmt.Errorf("statistiques: totaux par locataire: %w", err)
	}

	biens, err := uc.bienRepo.List()
	if err != nil {
		return nil, fmt.Errorf("statistiques: liste des biens: %w", err)
	}
	biensStats := make([]dto.BienStatsDTO, 0, len(biens))
	for _, bien := range biens {
		locataire, err := uc.locataireRepo.GetActifByBien(bien.ID)
		if err != nil {
			return nil, fmt.Errorf("statistiques: locataire actuel: %w", err)
		}

		// Total perçu sur l'historique complet du locataire actuel ;
		// zéro quand le bien est vacant.
		total := decimal.Zero
		var locataireResp *dto.LocataireResponse
		if locataire != nil {
			total = totauxParLocataire[locataire.ID]
			locataireResp = dto.FromLocataire(locataire, bien.ChargesMensuelles)
		}
		biensStats = append(biensStats, dto.BienStatsDTO{
			Bien:       *dto.FromBien(bien, locataireResp),
			Locataire:  locataireResp,
			TotalPercu: total,
		})
	}

	return &dto.StatistiquesResponse{
		RevenusMensuels: serie,
		BiensStats:      biensStats,
	}, nil
}

// ComputeSerieRevenus projette les totaux par jeton de mois sur la fenêtre
// glissante : exactement une entrée par mois, zéro pour les mois sans paiement,
// du plus ancien au plus récent.
func ComputeSerieRevenus(fenetre []rental.MoisFenetre, totaux map[string]decimal.Decimal) []dto.RevenusMoisDTO {
	serie := make([]dto.RevenusMoisDTO, 0, len(fenetre))
	for _, m := range fenetre {
		total, ok := totaux[m.Token]
		if !ok {
			total = decimal.Zero
		}
		serie = append(serie, dto.RevenusMoisDTO{Mois: m.Label, Total: total})
	}
	return serie
}
