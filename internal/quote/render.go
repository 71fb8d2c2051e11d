package quote

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/config"
)

//go:embed assets/logo.png
var defaultLogo []byte

//go:embed assets/watermark.png
var defaultWatermark []byte

const (
	logoImage      = "logo"
	watermarkImage = "watermark"

	pageMargin    = 15.0
	footerHeight  = 10.0
	blockGap      = 4.0
	watermarkSize = 120.0
	watermarkText = "DSP"
)

type image struct {
	data []byte
	kind string
}

// Renderer lays blocks out on A4 pages. It is safe for concurrent use; each Render
// builds its own pdf.
type Renderer struct {
	issuer    Issuer
	logo      *image
	watermark *image
}

// NewRenderer loads the issuer identity and images. Configured paths override the
// embedded images.
func NewRenderer(cfg config.QuoteConfig) (*Renderer, error) {
	r := &Renderer{
		issuer: Issuer{
			Name:    cfg.IssuerName,
			Tagline: cfg.IssuerTagline,
			Phone:   cfg.IssuerPhone,
			Email:   cfg.IssuerEmail,
			Address: cfg.IssuerAddress,
			Website: cfg.IssuerWebsite,
		},
		logo:      &image{data: defaultLogo, kind: "PNG"},
		watermark: &image{data: defaultWatermark, kind: "PNG"},
	}

	var err error
	if cfg.LogoPath != "" {
		if r.logo, err = loadImage(cfg.LogoPath); err != nil {
			return nil, err
		}
	}
	if cfg.WatermarkPath != "" {
		if r.watermark, err = loadImage(cfg.WatermarkPath); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func loadImage(path string) (*image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	kind := strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), "."))
	if kind == "JPEG" {
		kind = "JPG"
	}
	if kind != "PNG" && kind != "JPG" {
		return nil, fmt.Errorf("unsupported image type %q", kind)
	}
	return &image{data: data, kind: kind}, nil
}

// Issuer returns the configured shop identity
func (r *Renderer) Issuer() Issuer {
	return r.issuer
}

// Render composes and paginates the document. The same document and issue date
// always produce the same bytes.
func (r *Renderer) Render(doc Document) ([]byte, error) {
	if len(FilterItems(doc.Items)) == 0 {
		return nil, &CompositionError{Stage: "compose", Err: ErrNoItems}
	}
	if doc.Issuer == (Issuer{}) {
		doc.Issuer = r.issuer
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.SetCreationDate(doc.IssueDate)
	pdf.SetModificationDate(doc.IssueDate)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(DocumentTitle+" "+doc.Reference, true)
	pdf.SetAuthor(doc.Issuer.Name, true)
	pdf.SetCreator("dsp-backoffice", false)
	pdf.AliasNbPages("")

	c := &canvas{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	if r.logo != nil {
		pdf.RegisterImageOptionsReader(logoImage, fpdf.ImageOptions{ImageType: r.logo.kind}, bytes.NewReader(r.logo.data))
		c.hasLogo = pdf.Ok()
	}
	hasWatermark := false
	if r.watermark != nil && pdf.Ok() {
		pdf.RegisterImageOptionsReader(watermarkImage, fpdf.ImageOptions{ImageType: r.watermark.kind}, bytes.NewReader(r.watermark.data))
		hasWatermark = pdf.Ok()
	}
	if err := pdf.Error(); err != nil {
		return nil, &CompositionError{Stage: "assets", Err: err}
	}

	pdf.SetHeaderFunc(func() {
		r.stampWatermark(c, hasWatermark)
	})
	pdf.SetFooterFunc(func() {
		c.font("I", smallSize)
		pdf.SetTextColor(120, 120, 120)
		w, h := pdf.GetPageSize()
		c.text(pageMargin, h-pageMargin, w-2*pageMargin, 5, doc.Issuer.Name+"  |  Página "+strconv.Itoa(pdf.PageNo())+" de {nb}", "C")
		pdf.SetTextColor(0, 0, 0)
	})

	layout(c, Compose(doc))

	if err := pdf.Error(); err != nil {
		return nil, &CompositionError{Stage: "layout", Err: err}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &CompositionError{Stage: "output", Err: err}
	}
	return buf.Bytes(), nil
}

// stampWatermark draws the centred watermark behind the page content
func (r *Renderer) stampWatermark(c *canvas, useImage bool) {
	pdf := c.pdf
	w, h := pdf.GetPageSize()
	pdf.SetAlpha(0.07, "Normal")
	if useImage {
		pdf.ImageOptions(watermarkImage, (w-watermarkSize)/2, (h-watermarkSize)/2, watermarkSize, watermarkSize,
			false, fpdf.ImageOptions{ImageType: r.watermark.kind}, 0, "")
	} else {
		c.font("B", 110)
		pdf.SetTextColor(20, 52, 94)
		pdf.TransformBegin()
		pdf.TransformRotate(45, w/2, h/2)
		tw := pdf.GetStringWidth(watermarkText)
		pdf.Text((w-tw)/2, h/2+15, watermarkText)
		pdf.TransformEnd()
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.SetAlpha(1, "Normal")
}

// layout places blocks top to bottom, adding a page whenever the next block does not
// fit. Tables break between rows and repeat their header.
func layout(c *canvas, blocks []Block) {
	pdf := c.pdf
	pageW, pageH := pdf.GetPageSize()
	width := pageW - 2*pageMargin
	bottom := pageH - pageMargin - footerHeight

	pdf.AddPage()
	y := pageMargin

	newPage := func() {
		pdf.AddPage()
		y = pageMargin
	}

	for _, block := range blocks {
		if table, ok := block.(*tableBlock); ok {
			if y+table.headHeight()+firstRowHeight(c, table, width) > bottom {
				newPage()
			}
			y = table.drawHead(c, pageMargin, y, width)
			for _, row := range table.rows {
				if y+table.rowHeight(c, row, width) > bottom {
					newPage()
					y = table.drawHead(c, pageMargin, y, width)
				}
				y = table.drawRow(c, row, pageMargin, y, width)
			}
			y += blockGap
			continue
		}

		h := block.height(c, width)
		if y+h > bottom && y > pageMargin {
			newPage()
		}
		block.draw(c, pageMargin, y, width)
		y += h + blockGap
	}
}

func firstRowHeight(c *canvas, table *tableBlock, width float64) float64 {
	if len(table.rows) == 0 {
		return 0
	}
	return table.rowHeight(c, table.rows[0], width)
}
