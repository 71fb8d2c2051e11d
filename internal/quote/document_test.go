package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFilterItems_InclusionLaw(t *testing.T) {
	items := []LineItem{
		{Zone: "Capot"},
		{Zone: "Techo", HitCount: "12"},
		{Zone: "Puerta", Price: price("35000")},
		{Zone: "Baúl", Observation: "sobre pliegue"},
		{Zone: "Guardabarro", HitCount: "  ", Observation: " "},
		{Zone: "Zócalo", Price: price("-10")},
	}

	kept := FilterItems(items)
	zones := make([]string, len(kept))
	for i, item := range kept {
		zones[i] = item.Zone
	}
	assert.Equal(t, []string{"Techo", "Puerta", "Baúl"}, zones)
}

func TestFilterItems_Idempotent(t *testing.T) {
	items := []LineItem{
		{Zone: "Capot"},
		{Zone: "Techo", HitCount: "3"},
		{Zone: "Puerta", Price: price("1")},
	}
	once := FilterItems(items)
	assert.Equal(t, once, FilterItems(once))
}

func TestComputeTotals(t *testing.T) {
	items := []LineItem{
		{Zone: "Capot", Price: price("45000.50")},
		{Zone: "Techo", Price: price("80000")},
		{Zone: "Puerta", Price: price("12345.67")},
	}
	subtotal := price("137346.17")

	t.Run("single", func(t *testing.T) {
		totals := ComputeTotals(items, false)
		assert.True(t, totals.Subtotal.Equal(subtotal))
		assert.True(t, totals.Total.Equal(subtotal))
		assert.True(t, totals.Discount.IsZero())
	})

	t.Run("combo", func(t *testing.T) {
		totals := ComputeTotals(items, true)
		assert.True(t, totals.Subtotal.Equal(subtotal))
		assert.True(t, totals.Total.Equal(subtotal.Mul(price("0.8"))))
		assert.True(t, totals.Discount.Add(totals.Total).Equal(totals.Subtotal))
	})

	t.Run("empty", func(t *testing.T) {
		totals := ComputeTotals(nil, true)
		assert.True(t, totals.Total.IsZero())
	})
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$ 0,00"},
		{"100", "$ 100,00"},
		{"1000", "$ 1.000,00"},
		{"1234567.891", "$ 1.234.567,89"},
		{"-2500.5", "-$ 2.500,50"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(price(tt.in)))
		})
	}
}

func TestCompose(t *testing.T) {
	doc := sampleDocument()

	blocks := Compose(doc)
	kinds := make([]BlockKind, len(blocks))
	for i, b := range blocks {
		kinds[i] = b.Kind()
	}
	assert.Equal(t, []BlockKind{
		BlockHeader, BlockInfo, BlockTable, BlockTotals, BlockClassification,
		BlockChecklist, BlockChecklist, BlockParagraph, BlockTiers, BlockTerms,
	}, kinds)

	t.Run("observations column only when a row has one", func(t *testing.T) {
		table := Compose(doc)[2].(*tableBlock)
		assert.Equal(t, []string{ColumnZone, ColumnHits, ColumnSize, ColumnComplexity, ColumnExpectation, ColumnPrice}, table.Columns())

		doc.Items[0].Observation = "pliegue"
		table = Compose(doc)[2].(*tableBlock)
		assert.Contains(t, table.Columns(), ColumnObservation)
		for _, row := range table.rows {
			assert.Len(t, row, len(table.Columns()))
		}
	})

	t.Run("empty rows are not printed", func(t *testing.T) {
		table := Compose(doc)[2].(*tableBlock)
		assert.Len(t, table.rows, 2)
		assert.Equal(t, "Media", table.rows[0][4])
	})

	t.Run("combo shows three figures", func(t *testing.T) {
		totals := Compose(doc)[3].(*totalsBlock)
		assert.Len(t, totals.Figures(), 1)

		doc.Combo = true
		totals = Compose(doc)[3].(*totalsBlock)
		figures := totals.Figures()
		require.Len(t, figures, 3)
		assert.Equal(t, SubtotalLabel, figures[0][0])
		assert.Equal(t, DiscountLabel, figures[1][0])
		assert.Equal(t, TotalLabel, figures[2][0])
		assert.Equal(t, "$ 100.000,00", figures[2][1])
	})
}

func TestBuildChecklist_AppendsCustomSelections(t *testing.T) {
	list := buildChecklist(TechniquesSectionTitle, TechniqueOptions, []string{"calor controlado", "Microsoldadura", ""})
	assert.Len(t, list.options, len(TechniqueOptions)+1)
	assert.True(t, list.selected["calor controlado"])
	assert.True(t, list.selected["microsoldadura"])
}

func TestBoilerplate(t *testing.T) {
	require.Len(t, Tiers, 3)
	assert.Equal(t, "Baja", Tiers[0].Label)
	assert.Equal(t, "Media", Tiers[1].Label)
	assert.Equal(t, "Alta", Tiers[2].Label)
	assert.Equal(t, "Alta", TierLabel("alta"))
	assert.Equal(t, "otra", TierLabel("otra"))

	assert.Equal(t, "Validez del presupuesto: 15 días", ValidityText(15))
	assert.Contains(t, CalculationCriteria, "no incluyen trabajos de pintura")
	assert.Len(t, Terms, 6)
	for _, scale := range []Scale{DamageLevelScale, VehicleSegmentScale, PaintTypeScale, TechnicalRiskScale} {
		assert.Len(t, scale.Options, 3, scale.Label)
	}
}

func TestScale_Accepts(t *testing.T) {
	tests := []struct {
		scale Scale
		value string
		want  bool
	}{
		{DamageLevelScale, "", true},
		{DamageLevelScale, "Leve", true},
		{DamageLevelScale, "severo", true},
		{VehicleSegmentScale, "ECONÓMICO", true},
		{PaintTypeScale, " perlada / tricapa ", true},
		{PaintTypeScale, "Perlada", false},
		{TechnicalRiskScale, "Extremo", false},
	}
	for _, tt := range tests {
		t.Run(tt.scale.Label+"/"+tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scale.Accepts(tt.value))
		})
	}
}
