package quote

import (
	"strings"
)

const dateLayout = "02/01/2006"

// Compose turns a document into the ordered block list. Empty rows are dropped first.
func Compose(doc Document) []Block {
	items := FilterItems(doc.Items)

	blocks := []Block{
		&headerBlock{
			issuer:    doc.Issuer,
			reference: doc.Reference,
			issued:    doc.IssueDate.Format(dateLayout),
			validity:  ValidityText(doc.ValidityDays),
		},
		&infoBlock{rows: infoRows(doc.Party)},
		buildTable(items),
		&totalsBlock{totals: ComputeTotals(items, doc.Combo)},
		&classificationBlock{
			scales: []Scale{DamageLevelScale, VehicleSegmentScale, PaintTypeScale, TechnicalRiskScale},
			chosen: []string{
				doc.Classification.DamageLevel,
				doc.Classification.VehicleSegment,
				doc.Classification.PaintType,
				doc.Classification.TechnicalRisk,
			},
		},
		buildChecklist(ObservationsSectionTitle, ObservationOptions, doc.Observations),
		buildChecklist(TechniquesSectionTitle, TechniqueOptions, doc.Techniques),
		&paragraphBlock{title: CriteriaSectionTitle, text: CalculationCriteria},
		&tiersBlock{tiers: Tiers},
		&termsBlock{
			terms:    Terms,
			validity: ValidityText(doc.ValidityDays) + " (hasta el " + doc.ExpiresAt().Format(dateLayout) + ")",
		},
	}
	return blocks
}

func infoRows(p Party) [][2]string {
	rows := [][2]string{
		{"Cliente", p.ClientName},
		{"Teléfono", p.ClientPhone},
		{"Email", p.ClientEmail},
		{"Ubicación", p.Location},
		{"Vehículo", p.Vehicle},
		{"Patente", p.Plate},
	}
	kept := rows[:0]
	for _, r := range rows {
		if strings.TrimSpace(r[1]) != "" {
			kept = append(kept, r)
		}
	}
	return kept
}

func buildTable(items []LineItem) *tableBlock {
	withObs := HasObservations(items)

	cols := []column{
		{title: ColumnZone, weight: 32, align: "L"},
		{title: ColumnHits, weight: 15, align: "C"},
		{title: ColumnSize, weight: 22, align: "C"},
		{title: ColumnComplexity, weight: 24, align: "C"},
		{title: ColumnExpectation, weight: 22, align: "C"},
	}
	if withObs {
		cols = append(cols, column{title: ColumnObservation, weight: 40, align: "L"})
	}
	cols = append(cols, column{title: ColumnPrice, weight: 28, align: "R"})

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := []string{
			item.Zone,
			item.HitCount,
			item.Size,
			item.Complexity,
			TierLabel(item.Expectation),
		}
		if withObs {
			row = append(row, item.Observation)
		}
		row = append(row, FormatMoney(item.Price))
		rows = append(rows, row)
	}
	return &tableBlock{columns: cols, rows: rows}
}

// buildChecklist prints every fixed option and appends selected values that are not in the list
func buildChecklist(title string, options, selected []string) *checklistBlock {
	chosen := make(map[string]bool, len(selected))
	all := append([]string(nil), options...)
	known := make(map[string]bool, len(options))
	for _, opt := range options {
		known[strings.ToLower(opt)] = true
	}
	for _, s := range selected {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		chosen[key] = true
		if !known[key] {
			known[key] = true
			all = append(all, s)
		}
	}
	return &checklistBlock{title: title, options: all, selected: chosen}
}
