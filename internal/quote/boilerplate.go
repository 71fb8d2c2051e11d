package quote

import (
	"strconv"
	"strings"
)

// Fixed document text. Everything printed verbatim on every quote lives here.

const (
	DocumentTitle    = "PRESUPUESTO"
	DocumentSubtitle = "Reparación de abolladuras sin pintura (PDR)"

	ClientSectionTitle         = "Datos del cliente"
	TableSectionTitle          = "Detalle de trabajos"
	ClassificationSectionTitle = "Clasificación técnica"
	ObservationsSectionTitle   = "Observaciones técnicas"
	TechniquesSectionTitle     = "Técnicas aplicadas"
	CriteriaSectionTitle       = "Criterios de cálculo"
	TiersSectionTitle          = "Expectativa de resultado"
	TermsSectionTitle          = "Términos y condiciones"

	SubtotalLabel = "Subtotal"
	DiscountLabel = "Descuento combo (20%)"
	TotalLabel    = "TOTAL"

	CalculationCriteria = "El valor de cada zona se calcula según la cantidad de golpes, el tamaño y la " +
		"profundidad de cada abolladura, la accesibilidad desde el interior del panel, el tipo de " +
		"material (acero o aluminio) y la cercanía a pliegues, bordes o refuerzos estructurales. " +
		"Los precios no incluyen trabajos de pintura, chapa tradicional ni reposición de piezas."
)

// Table column headers
const (
	ColumnZone        = "Zona"
	ColumnHits        = "Golpes"
	ColumnSize        = "Tamaño"
	ColumnComplexity  = "Complejidad"
	ColumnExpectation = "Expectativa"
	ColumnObservation = "Observaciones"
	ColumnPrice       = "Precio"
)

// Scale is one line of the technical classification: a label and its fixed options
type Scale struct {
	Label   string
	Options []string
}

var (
	DamageLevelScale    = Scale{Label: "Nivel de daño", Options: []string{"Leve", "Moderado", "Severo"}}
	VehicleSegmentScale = Scale{Label: "Segmento del vehículo", Options: []string{"Económico", "Medio", "Premium"}}
	PaintTypeScale      = Scale{Label: "Tipo de pintura", Options: []string{"Sólida", "Metalizada", "Perlada / tricapa"}}
	TechnicalRiskScale  = Scale{Label: "Riesgo técnico", Options: []string{"Bajo", "Medio", "Alto"}}
)

// Accepts reports whether value is one of the options, ignoring case. An empty value
// leaves the line unchecked and is accepted.
func (s Scale) Accepts(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	for _, opt := range s.Options {
		if strings.EqualFold(opt, value) {
			return true
		}
	}
	return false
}

// ObservationOptions is the technical observations checklist
var ObservationOptions = []string{
	"Pintura original en buen estado",
	"Pintura con retoques o repintado previo",
	"Abolladura sobre pliegue o línea de carrocería",
	"Daño cercano a borde de panel",
	"Acceso limitado por refuerzos internos",
	"Requiere desmontaje de tapizados o accesorios",
	"Panel de aluminio",
}

// TechniqueOptions is the applied techniques checklist
var TechniqueOptions = []string{
	"Varillas por el interior (push)",
	"Tracción con adhesivo (glue pulling)",
	"Nivelado con martillo y punzón (tap down)",
	"Lámpara y tablero de lectura",
	"Calor controlado",
}

// Tier is one expectation level with its fixed description
type Tier struct {
	Key   string
	Label string
	Text  string
}

var Tiers = []Tier{
	{
		Key:   "baja",
		Label: "Baja",
		Text: "Mejora visible de la abolladura. Pueden quedar marcas leves u ondulaciones " +
			"perceptibles a contraluz. Se recomienda cuando el daño es profundo, está sobre un " +
			"pliegue o la pintura presenta tensiones.",
	},
	{
		Key:   "media",
		Label: "Media",
		Text: "Recuperación de la forma original en la mayor parte del panel. Pueden quedar " +
			"mínimas imperfecciones visibles solo con lámpara de lectura.",
	},
	{
		Key:   "alta",
		Label: "Alta",
		Text: "Reparación prácticamente imperceptible a simple vista. Aplica a abolladuras de " +
			"acceso favorable, sin quiebre de pintura y alejadas de bordes y pliegues.",
	},
}

// TierLabel returns the display label of an expectation key, or the key itself
func TierLabel(key string) string {
	for _, t := range Tiers {
		if t.Key == key {
			return t.Label
		}
	}
	return key
}

// Terms are printed as a numbered list
var Terms = []string{
	"El presupuesto tiene la validez indicada en el encabezado. Vencido ese plazo los valores pueden modificarse.",
	"El valor se basa en la inspección visual y en las fotografías recibidas. Si al desmontar se detectan daños ocultos se informará antes de continuar.",
	"La técnica PDR no repara pintura quebrada, saltada o cuarteada. Si la pintura se daña durante el trabajo por una condición previa, el taller no se responsabiliza por el repintado.",
	"El resultado esperado corresponde a la expectativa indicada para cada zona.",
	"Para reservar el turno se requiere confirmación por escrito. La forma de pago se acuerda al momento de la entrega del vehículo.",
	"Los trabajos cuentan con garantía de 6 meses sobre la reparación realizada, excepto nuevos impactos.",
}

// ValidityText renders the validity line printed under the header
func ValidityText(days int) string {
	return "Validez del presupuesto: " + strconv.Itoa(days) + " días"
}
