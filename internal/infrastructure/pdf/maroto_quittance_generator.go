// Package pdf implémente le rendu PDF de la quittance de loyer.
//
// Mise en page A4 :
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  EN-TÊTE : Bailleur + adresse  │  QUITTANCE DE LOYER + mois  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LOCATAIRE : nom + bien loué                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE : Date | Catégorie | Mode | Montant                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL ENCAISSÉ                                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MENTION : reçu pour solde du mois + date de génération      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tmercier/gestion-locative-api/internal/application/dto"
	"github.com/tmercier/gestion-locative-api/internal/domain/entity"
)

// ── Palette de couleurs ───────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 31, Green: 78, Blue: 121}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoQuittanceGenerator implémente quittance.QuittancePDFGenerator avec
// Maroto v2.
type MarotoQuittanceGenerator struct{}

// NewMarotoQuittanceGenerator construit le générateur.
func NewMarotoQuittanceGenerator() *MarotoQuittanceGenerator {
	return &MarotoQuittanceGenerator{}
}

// GenerateQuittancePDF génère le PDF de la quittance et renvoie ses octets.
func (g *MarotoQuittanceGenerator) GenerateQuittancePDF(
	_ context.Context,
	q *dto.QuittanceResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Quittance de loyer "+q.Mois, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(q))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(bailleurRow(q.Bailleur))
	m.AddRows(locataireRow(&q.Locataire))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Table des paiements, dans l'ordre du référentiel de catégories
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(q) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(q))

	m.AddRows(line.NewRow(4))
	for _, r := range mentionRows(q) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer le document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow : titre et période (droite) face au nom du bailleur (gauche).
func headerRow(q *dto.QuittanceResponse) core.Row {
	nomBailleur := "Bailleur"
	if q.Bailleur != nil {
		nomBailleur = q.Bailleur.Nom
	}
	return row.New(16).Add(
		col.New(6).Add(
			text.New(nomBailleur, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New("QUITTANCE DE LOYER", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New(q.MoisNom+" "+q.Annee, props.Text{
				Size: 10, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// bailleurRow : coordonnées du bailleur.
func bailleurRow(b *dto.BailleurResponse) core.Row {
	if b == nil {
		return row.New(10).Add(col.New(12).Add(
			text.New("BAILLEUR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Coordonnées non renseignées", props.Text{
				Size: 9, Top: 6, Color: colorGray,
			}),
		))
	}
	contact := fmt.Sprintf("Tél : %s   |   Email : %s",
		nonEmpty(b.Telephone, "—"), nonEmpty(b.Email, "—"))
	if b.SIRET != "" {
		contact += "   |   SIRET : " + b.SIRET
	}
	return row.New(16).Add(col.New(12).Add(
		text.New("BAILLEUR", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
		text.New(nonEmpty(b.AdresseComplete, "—"), props.Text{Size: 9, Top: 6}),
		text.New(contact, props.Text{Size: 8, Top: 11, Color: colorGray}),
	))
}

// locataireRow : locataire et bail.
func locataireRow(l *dto.LocataireResponse) core.Row {
	bail := fmt.Sprintf("Bail depuis le %s   |   Loyer mensuel charges comprises : %s €",
		l.DateDebutBail.Format("02/01/2006"), formatMontant(l.LoyerTotal.StringFixed(2)))
	return row.New(16).Add(col.New(12).Add(
		text.New("LOCATAIRE", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
		text.New(l.NomComplet, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
		text.New(bail, props.Text{Size: 8, Top: 12, Color: colorGray}),
	))
}

// tableHeaderRow : en-tête de la table des paiements.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date", 2, align.Left),
		h("Catégorie", 4, align.Left),
		h("Mode de paiement", 3, align.Left),
		h("Montant", 3, align.Right),
	)
}

// tableRows : une ligne par paiement, groupées par catégorie dans l'ordre du
// référentiel.
func tableRows(q *dto.QuittanceResponse) []core.Row {
	var result []core.Row
	connues := make(map[string]bool, len(entity.CategoriesPaiement))
	for _, cat := range entity.CategoriesPaiement {
		connues[cat.Code] = true
		for _, p := range q.ParCategorie[cat.Code] {
			result = append(result, paiementRow(p))
		}
	}
	// Catégories hors référentiel : affichées après, dans l'ordre des paiements.
	for _, p := range q.Paiements {
		if !connues[p.Categorie] {
			result = append(result, paiementRow(p))
		}
	}
	if len(result) == 0 {
		result = append(result, row.New(8).Add(col.New(12).Add(
			text.New("Aucun paiement enregistré pour ce mois.", props.Text{
				Size: 9, Align: align.Center, Top: 2, Color: colorGray,
			}),
		)))
	}
	return result
}

func paiementRow(p dto.PaiementResponse) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(
			p.DatePaiement.Format("02/01/2006"),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(4).Add(text.New(
			p.CategorieLabel,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(3).Add(text.New(
			nonEmpty(p.ModePaiement, "—"),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(3).Add(text.New(
			formatMontant(p.Montant.StringFixed(2))+" €",
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow : total encaissé pour le mois.
func totalRow(q *dto.QuittanceResponse) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL ENCAISSÉ :", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(formatMontant(q.Total.StringFixed(2))+" €", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// mentionRows : mention légale et date de génération.
func mentionRows(q *dto.QuittanceResponse) []core.Row {
	mention := fmt.Sprintf(
		"Je soussigné, bailleur du logement désigné ci-dessus, reconnais avoir reçu "+
			"de %s la somme de %s € au titre des loyers et charges du mois de %s %s, "+
			"et lui en donne quittance, sous réserve de tous mes droits.",
		q.Locataire.NomComplet, formatMontant(q.Total.StringFixed(2)),
		q.MoisNom, q.Annee,
	)
	return []core.Row{
		row.New(16).Add(col.New(12).Add(
			text.New(mention, props.Text{Size: 9, Top: 1, Color: colorGray}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New("Fait le "+q.DateGeneration.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 2,
			}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMontant insère des espaces de milliers dans la partie entière d'un
// montant "1234.50" → "1 234.50".
func formatMontant(s string) string {
	entier, reste := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			entier, reste = s[:i], s[i:]
			break
		}
	}
	n := len(entier)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3+len(reste))
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, entier[i])
	}
	return string(buf) + reste
}
