// Package analytics contient les cas d'usage de lecture du tableau de bord
// et de la page de statistiques.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tmercier/gestion-locative-api/internal/application/dto"
	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
	"github.com/tmercier/gestion-locative-api/internal/domain/rental"
	"github.com/tmercier/gestion-locative-api/internal/domain/repository"
)

// DashboardUseCase produit les indicateurs du mois en cours : revenus
// mensuels attendus, total perçu, loyers en retard.
type DashboardUseCase struct {
	bienRepo      repository.BienRepository
	locataireRepo repository.LocataireRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construit le cas d'usage.
func NewDashboardUseCase(
	bienRepo repository.BienRepository,
	locataireRepo repository.LocataireRepository,
	analyticsRepo repository.AnalyticsRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		bienRepo:      bienRepo,
		locataireRepo: locataireRepo,
		analyticsRepo: analyticsRepo,
	}
}

// GetSummary assemble le DashboardResponse du jour.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	today := time.Now()
	moisActuel := rental.TokenMois(today)

	biens, err := uc.bienRepo.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: liste des biens: %w", err)
	}
	locatairesActifs, err := uc.locataireRepo.List(true)
	if err != nil {
		return nil, fmt.Errorf("dashboard: locataires actifs: %w", err)
	}
	totalPercu, err := uc.analyticsRepo.TotalPercuMois(ctx, moisActuel)
	if err != nil {
		return nil, fmt.Errorf("dashboard: total perçu: %w", err)
	}
	payeurs, err := uc.analyticsRepo.LocatairesAyantPaye(ctx, moisActuel)
	if err != nil {
		return nil, fmt.Errorf("dashboard: paiements du mois: %w", err)
	}

	return ComputeDashboard(biens, locatairesActifs, totalPercu, payeurs, today), nil
}

// ComputeDashboard assemblage pur du tableau de bord à partir d'un instantané :
// le parc, les locataires actifs, le total perçu du mois courant et l'ensemble
// des locataires ayant payé ce mois-ci (toutes catégories).
func ComputeDashboard(
	biens []*entity.Bien,
	locatairesActifs []*entity.Locataire,
	totalPercu decimal.Decimal,
	payeurs map[string]bool,
	today time.Time,
) *dto.DashboardResponse {
	chargesParBien := make(map[string]decimal.Decimal, len(biens))
	for _, b := range biens {
		chargesParBien[b.ID] = b.ChargesMensuelles
	}

	revenus := decimal.Zero
	actifs := make([]dto.LocataireResponse, 0, len(locatairesActifs))
	retards := make([]dto.LocataireResponse, 0)
	for _, l := range locatairesActifs {
		charges := chargesParBien[l.BienID]
		revenus = revenus.Add(l.LoyerTotal(charges))
		resp := dto.FromLocataire(l, charges)
		actifs = append(actifs, *resp)
		if rental.EnRetard(l.JourPaiement, today, payeurs[l.ID]) {
			retards = append(retards, *resp)
		}
	}

	// Locataire actuel de chaque bien : premier actif rencontré.
	actuelParBien := make(map[string]*dto.LocataireResponse, len(biens))
	for i := range actifs {
		if _, ok := actuelParBien[actifs[i].BienID]; !ok {
			actuelParBien[actifs[i].BienID] = &actifs[i]
		}
	}
	biensResp := make([]dto.BienResponse, 0, len(biens))
	for _, b := range biens {
		biensResp = append(biensResp, *dto.FromBien(b, actuelParBien[b.ID]))
	}

	return &dto.DashboardResponse{
		MoisActuel:       rental.TokenMois(today),
		RevenusMensuels:  revenus,
		TotalPercu:       totalPercu,
		LoyersEnRetard:   retards,
		LocatairesActifs: actifs,
		Biens:            biensResp,
	}
}
