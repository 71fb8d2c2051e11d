package quote

import (
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
)

// BlockKind names a section of the document
type BlockKind string

const (
	BlockHeader         BlockKind = "header"
	BlockInfo           BlockKind = "info"
	BlockTable          BlockKind = "table"
	BlockTotals         BlockKind = "totals"
	BlockClassification BlockKind = "classification"
	BlockChecklist      BlockKind = "checklist"
	BlockParagraph      BlockKind = "paragraph"
	BlockTiers          BlockKind = "tiers"
	BlockTerms          BlockKind = "terms"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 4.6
	titleSize  = 11.0
	bodySize   = 9.0
	smallSize  = 8.0
	boxSize    = 3.0
)

// canvas couples the pdf with the cp1252 translator used by the core fonts
type canvas struct {
	pdf     *fpdf.Fpdf
	tr      func(string) string
	hasLogo bool
}

func (c *canvas) font(style string, size float64) {
	c.pdf.SetFont(fontFamily, style, size)
}

func (c *canvas) lines(text string, width float64) int {
	if strings.TrimSpace(text) == "" {
		return 1
	}
	return len(c.pdf.SplitLines([]byte(c.tr(text)), width))
}

func (c *canvas) text(x, y, w, h float64, text, align string) {
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(w, h, c.tr(text), "", 0, align, false, 0, "")
}

func (c *canvas) multi(x, y, w float64, text, align string) float64 {
	c.pdf.SetXY(x, y)
	c.pdf.MultiCell(w, lineHeight, c.tr(text), "", align, false)
	return c.pdf.GetY()
}

func (c *canvas) checkbox(x, y float64, checked bool) {
	c.pdf.SetLineWidth(0.2)
	c.pdf.Rect(x, y, boxSize, boxSize, "D")
	if checked {
		c.pdf.Line(x+0.5, y+0.5, x+boxSize-0.5, y+boxSize-0.5)
		c.pdf.Line(x+boxSize-0.5, y+0.5, x+0.5, y+boxSize-0.5)
	}
}

func (c *canvas) sectionTitle(x, y, width float64, title string) float64 {
	c.font("B", titleSize)
	c.pdf.SetTextColor(20, 52, 94)
	c.text(x, y, width, 6, title, "L")
	c.pdf.SetDrawColor(20, 52, 94)
	c.pdf.SetLineWidth(0.3)
	c.pdf.Line(x, y+6, x+width, y+6)
	c.pdf.SetTextColor(0, 0, 0)
	c.pdf.SetDrawColor(0, 0, 0)
	return y + 8
}

const sectionTitleHeight = 8.0

// Block is one declarative section. The renderer measures a block and starts a new
// page when it does not fit.
type Block interface {
	Kind() BlockKind
	height(c *canvas, width float64) float64
	draw(c *canvas, x, y, width float64)
}

type headerBlock struct {
	issuer    Issuer
	reference string
	issued    string
	validity  string
}

func (b *headerBlock) Kind() BlockKind { return BlockHeader }

func (b *headerBlock) height(*canvas, float64) float64 { return 38 }

func (b *headerBlock) contactLines() []string {
	var out []string
	for _, v := range []string{b.issuer.Phone, b.issuer.Email, b.issuer.Address, b.issuer.Website} {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func (b *headerBlock) draw(c *canvas, x, y, width float64) {
	left := x
	if c.hasLogo {
		c.pdf.ImageOptions(logoImage, x, y, 22, 22, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		left = x + 26
	}

	c.font("B", 16)
	c.pdf.SetTextColor(20, 52, 94)
	c.text(left, y+2, 90, 8, DocumentTitle, "L")
	c.font("", bodySize)
	c.pdf.SetTextColor(0, 0, 0)
	c.text(left, y+10, 90, 5, DocumentSubtitle, "L")
	c.font("B", bodySize)
	c.text(left, y+15, 90, 5, b.issuer.Name, "L")
	if b.issuer.Tagline != "" {
		c.font("I", smallSize)
		c.text(left, y+20, 90, 5, b.issuer.Tagline, "L")
	}

	c.font("", smallSize)
	cy := y + 2
	for _, line := range b.contactLines() {
		c.text(x+width-70, cy, 70, 4.5, line, "R")
		cy += 4.5
	}

	c.font("B", bodySize)
	c.text(x, y+27, width/2, 5, "N° "+b.reference+"   Fecha: "+b.issued, "L")
	c.font("", bodySize)
	c.text(x+width/2, y+27, width/2, 5, b.validity, "R")

	c.pdf.SetDrawColor(20, 52, 94)
	c.pdf.SetLineWidth(0.6)
	c.pdf.Line(x, y+34, x+width, y+34)
	c.pdf.SetDrawColor(0, 0, 0)
}

type infoBlock struct {
	rows [][2]string
}

func (b *infoBlock) Kind() BlockKind { return BlockInfo }

func (b *infoBlock) height(*canvas, float64) float64 {
	half := (len(b.rows) + 1) / 2
	return sectionTitleHeight + float64(half)*5 + 2
}

func (b *infoBlock) draw(c *canvas, x, y, width float64) {
	y = c.sectionTitle(x, y, width, ClientSectionTitle)
	half := (len(b.rows) + 1) / 2
	col := width / 2
	for i, row := range b.rows {
		cx := x
		cy := y + float64(i)*5
		if i >= half {
			cx = x + col
			cy = y + float64(i-half)*5
		}
		c.font("B", bodySize)
		c.text(cx, cy, 24, 5, row[0]+":", "L")
		c.font("", bodySize)
		c.text(cx+24, cy, col-26, 5, row[1], "L")
	}
}

type column struct {
	title  string
	weight float64
	align  string
}

type tableBlock struct {
	columns []column
	rows    [][]string
}

func (b *tableBlock) Kind() BlockKind { return BlockTable }

// Columns returns the header titles in print order
func (b *tableBlock) Columns() []string {
	out := make([]string, len(b.columns))
	for i, col := range b.columns {
		out[i] = col.title
	}
	return out
}

func (b *tableBlock) widths(width float64) []float64 {
	total := 0.0
	for _, col := range b.columns {
		total += col.weight
	}
	out := make([]float64, len(b.columns))
	for i, col := range b.columns {
		out[i] = width * col.weight / total
	}
	return out
}

func (b *tableBlock) headHeight() float64 { return sectionTitleHeight + 7 }

func (b *tableBlock) rowHeight(c *canvas, row []string, width float64) float64 {
	c.font("", bodySize)
	widths := b.widths(width)
	maxLines := 1
	for i, cell := range row {
		if n := c.lines(cell, widths[i]-2); n > maxLines {
			maxLines = n
		}
	}
	return float64(maxLines)*lineHeight + 2
}

func (b *tableBlock) height(c *canvas, width float64) float64 {
	h := b.headHeight()
	for _, row := range b.rows {
		h += b.rowHeight(c, row, width)
	}
	return h
}

func (b *tableBlock) drawHead(c *canvas, x, y, width float64) float64 {
	y = c.sectionTitle(x, y, width, TableSectionTitle)
	c.font("B", smallSize)
	c.pdf.SetFillColor(20, 52, 94)
	c.pdf.SetTextColor(255, 255, 255)
	cx := x
	for i, w := range b.widths(width) {
		c.pdf.SetXY(cx, y)
		c.pdf.CellFormat(w, 7, c.tr(b.columns[i].title), "1", 0, "C", true, 0, "")
		cx += w
	}
	c.pdf.SetTextColor(0, 0, 0)
	return y + 7
}

func (b *tableBlock) drawRow(c *canvas, row []string, x, y, width float64) float64 {
	h := b.rowHeight(c, row, width)
	c.font("", bodySize)
	c.pdf.SetLineWidth(0.2)
	cx := x
	for i, w := range b.widths(width) {
		c.pdf.Rect(cx, y, w, h, "D")
		c.pdf.SetXY(cx+1, y+1)
		c.pdf.MultiCell(w-2, lineHeight, c.tr(row[i]), "", b.columns[i].align, false)
		cx += w
	}
	return y + h
}

func (b *tableBlock) draw(c *canvas, x, y, width float64) {
	y = b.drawHead(c, x, y, width)
	for _, row := range b.rows {
		y = b.drawRow(c, row, x, y, width)
	}
}

type totalsBlock struct {
	totals Totals
}

func (b *totalsBlock) Kind() BlockKind { return BlockTotals }

// Figures returns the labelled amounts printed in the totals box
func (b *totalsBlock) Figures() [][2]string {
	if b.totals.Combo {
		return [][2]string{
			{SubtotalLabel, FormatMoney(b.totals.Subtotal)},
			{DiscountLabel, "-" + FormatMoney(b.totals.Discount)},
			{TotalLabel, FormatMoney(b.totals.Total)},
		}
	}
	return [][2]string{{TotalLabel, FormatMoney(b.totals.Total)}}
}

func (b *totalsBlock) height(*canvas, float64) float64 {
	return float64(len(b.Figures()))*7 + 4
}

func (b *totalsBlock) draw(c *canvas, x, y, width float64) {
	y += 2
	figures := b.Figures()
	for i, f := range figures {
		last := i == len(figures)-1
		if last {
			c.font("B", titleSize)
			c.pdf.SetFillColor(230, 236, 245)
		} else {
			c.font("", bodySize)
		}
		c.pdf.SetXY(x+width-90, y)
		c.pdf.CellFormat(50, 7, c.tr(f[0]), "", 0, "R", last, 0, "")
		c.pdf.CellFormat(40, 7, c.tr(f[1]), "", 0, "R", last, 0, "")
		y += 7
	}
}

type classificationBlock struct {
	scales []Scale
	chosen []string
}

func (b *classificationBlock) Kind() BlockKind { return BlockClassification }

func (b *classificationBlock) height(*canvas, float64) float64 {
	return sectionTitleHeight + float64(len(b.scales))*6 + 2
}

func (b *classificationBlock) draw(c *canvas, x, y, width float64) {
	y = c.sectionTitle(x, y, width, ClassificationSectionTitle)
	for i, scale := range b.scales {
		c.font("B", bodySize)
		c.text(x, y, 48, 5, scale.Label, "L")
		c.font("", bodySize)
		cx := x + 50
		step := (width - 50) / float64(len(scale.Options))
		for _, opt := range scale.Options {
			c.checkbox(cx, y+1, strings.EqualFold(opt, strings.TrimSpace(b.chosen[i])))
			c.text(cx+boxSize+1.5, y, step-boxSize-2, 5, opt, "L")
			cx += step
		}
		y += 6
	}
}

type checklistBlock struct {
	title    string
	options  []string
	selected map[string]bool
}

func (b *checklistBlock) Kind() BlockKind { return BlockChecklist }

func (b *checklistBlock) height(*canvas, float64) float64 {
	rows := (len(b.options) + 1) / 2
	return sectionTitleHeight + float64(rows)*5.5 + 2
}

func (b *checklistBlock) draw(c *canvas, x, y, width float64) {
	y = c.sectionTitle(x, y, width, b.title)
	c.font("", bodySize)
	col := width / 2
	for i, opt := range b.options {
		cx := x + float64(i%2)*col
		cy := y + float64(i/2)*5.5
		c.checkbox(cx, cy+1, b.selected[strings.ToLower(opt)])
		c.text(cx+boxSize+1.5, cy, col-boxSize-3, 5, opt, "L")
	}
}

type paragraphBlock struct {
	title string
	text  string
}

func (b *paragraphBlock) Kind() BlockKind { return BlockParagraph }

func (b *paragraphBlock) height(c *canvas, width float64) float64 {
	c.font("", bodySize)
	return sectionTitleHeight + float64(c.lines(b.text, width))*lineHeight + 2
}

func (b *paragraphBlock) draw(c *canvas, x, y, width float64) {
	y = c.sectionTitle(x, y, width, b.title)
	c.font("", bodySize)
	c.multi(x, y, width, b.text, "J")
}

type tiersBlock struct {
	tiers []Tier
}

func (b *tiersBlock) Kind() BlockKind { return BlockTiers }

const tierLabelWidth = 18.0

func (b *tiersBlock) height(c *canvas, width float64) float64 {
	c.font("", bodySize)
	h := sectionTitleHeight
	for _, t := range b.tiers {
		h += float64(c.lines(t.Text, width-tierLabelWidth))*lineHeight + 1.5
	}
	return h + 1
}

func (b *tiersBlock) draw(c *canvas, x, y, width float64) {
	y = c.sectionTitle(x, y, width, TiersSectionTitle)
	for _, t := range b.tiers {
		c.font("B", bodySize)
		c.text(x, y, tierLabelWidth, lineHeight, t.Label, "L")
		c.font("", bodySize)
		y = c.multi(x+tierLabelWidth, y, width-tierLabelWidth, t.Text, "J") + 1.5
	}
}

type termsBlock struct {
	terms    []string
	validity string
}

func (b *termsBlock) Kind() BlockKind { return BlockTerms }

func (b *termsBlock) items() []string {
	out := make([]string, len(b.terms))
	for i, t := range b.terms {
		out[i] = strconv.Itoa(i+1) + ". " + t
	}
	return out
}

func (b *termsBlock) height(c *canvas, width float64) float64 {
	c.font("", smallSize)
	h := sectionTitleHeight + lineHeight + 1
	for _, item := range b.items() {
		h += float64(c.lines(item, width))*(lineHeight-0.6) + 0.8
	}
	return h
}

func (b *termsBlock) draw(c *canvas, x, y, width float64) {
	y = c.sectionTitle(x, y, width, TermsSectionTitle)
	c.font("B", smallSize)
	c.text(x, y, width, lineHeight, b.validity, "L")
	y += lineHeight + 1
	c.font("", smallSize)
	for _, item := range b.items() {
		c.pdf.SetXY(x, y)
		c.pdf.MultiCell(width, lineHeight-0.6, c.tr(item), "", "J", false)
		y = c.pdf.GetY() + 0.8
	}
}
