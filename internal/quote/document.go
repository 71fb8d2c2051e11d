// Package quote composes and renders the PDF quote handed to customers.
package quote

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	comboFactor   = decimal.RequireFromString("0.8")
	comboDiscount = decimal.RequireFromString("0.2")
)

// LineItem is one row of the quote table
type LineItem struct {
	Zone        string
	HitCount    string
	Size        string
	Complexity  string
	Expectation string
	Price       decimal.Decimal
	Observation string
}

// IsEmpty reports whether the row carries nothing worth printing
func (li LineItem) IsEmpty() bool {
	return strings.TrimSpace(li.HitCount) == "" &&
		!li.Price.IsPositive() &&
		strings.TrimSpace(li.Observation) == ""
}

// Issuer is the shop identity printed in the header
type Issuer struct {
	Name    string
	Tagline string
	Phone   string
	Email   string
	Address string
	Website string
}

// Party is the client and vehicle snapshot taken when the quote is generated
type Party struct {
	ClientName  string
	ClientPhone string
	ClientEmail string
	Location    string
	Vehicle     string
	Plate       string
}

// Classification holds the chosen value of each technical scale
type Classification struct {
	DamageLevel    string
	VehicleSegment string
	PaintType      string
	TechnicalRisk  string
}

// Document is the transient input of a quote. Only the rendered PDF is kept.
type Document struct {
	Reference      string
	Issuer         Issuer
	Party          Party
	IssueDate      time.Time
	ValidityDays   int
	Combo          bool
	Items          []LineItem
	Classification Classification
	Observations   []string
	Techniques     []string
}

// Totals are the money figures of a quote
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
	Combo    bool
}

// FilterItems drops empty rows. Applying it twice gives the same result.
func FilterItems(items []LineItem) []LineItem {
	kept := make([]LineItem, 0, len(items))
	for _, item := range items {
		if !item.IsEmpty() {
			kept = append(kept, item)
		}
	}
	return kept
}

// ComputeTotals sums prices and applies the fixed combo discount
func ComputeTotals(items []LineItem, combo bool) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price)
	}
	totals := Totals{Subtotal: subtotal, Discount: decimal.Zero, Total: subtotal, Combo: combo}
	if combo {
		totals.Discount = subtotal.Mul(comboDiscount)
		totals.Total = subtotal.Mul(comboFactor)
	}
	return totals
}

// HasObservations reports whether any row has an observation, which adds a table column
func HasObservations(items []LineItem) bool {
	for _, item := range items {
		if strings.TrimSpace(item.Observation) != "" {
			return true
		}
	}
	return false
}

// ExpiresAt returns the last valid day of the quote
func (d *Document) ExpiresAt() time.Time {
	return d.IssueDate.AddDate(0, 0, d.ValidityDays)
}

// FormatMoney renders an amount as "$ 1.234.567,89"
func FormatMoney(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, frac := fixed, "00"
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, frac = fixed[:i], fixed[i+1:]
	}

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + "$ " + grouped.String() + "," + frac
}
