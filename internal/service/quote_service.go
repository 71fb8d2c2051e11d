package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/mapper"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/notify"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/quote"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/realtime"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// QuoteRenderer turns a quote document into PDF bytes
type QuoteRenderer interface {
	Render(doc quote.Document) ([]byte, error)
	Issuer() quote.Issuer
}

// QuoteResult is a generated quote. PDF is always set. UploadErr and PersistErr report
// the side effects that failed after rendering succeeded.
type QuoteResult struct {
	PDF        []byte
	Filename   string
	URL        string
	Totals     quote.Totals
	Request    *domain.RequestDTO
	UploadErr  error
	PersistErr error
}

type QuoteService struct {
	requests     RequestStore
	uploads      *UploadService
	renderer     QuoteRenderer
	validityDays int
	sender       Sender
	publisher    Publisher
	logger       *zap.Logger
	now          func() time.Time
}

func NewQuoteService(
	requests RequestStore,
	uploads *UploadService,
	renderer QuoteRenderer,
	validityDays int,
	sender Sender,
	publisher Publisher,
	logger *zap.Logger,
) *QuoteService {
	if sender == nil {
		sender = nopSender{}
	}
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &QuoteService{
		requests:     requests,
		uploads:      uploads,
		renderer:     renderer,
		validityDays: validityDays,
		sender:       sender,
		publisher:    publisher,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock replaces the clock used for the default issue date
func (s *QuoteService) WithClock(now func() time.Time) *QuoteService {
	s.now = now
	return s
}

// Generate renders a quote for the request, uploads it and records it: the URL is
// appended to the attachments, the status becomes quote_sent and the total is stored
// as the quoted amount. When the upload fails the PDF is still returned and the request
// is not touched. A composition failure returns before anything is written.
func (s *QuoteService) Generate(ctx context.Context, id uuid.UUID, in *domain.GenerateQuoteRequest) (*QuoteResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	if err := validateClassification(in); err != nil {
		return nil, err
	}

	items := make([]quote.LineItem, 0, len(in.Items))
	for i, item := range in.Items {
		if item.Price.IsNegative() {
			return nil, &ValidationError{Fields: map[string]string{
				fmt.Sprintf("items[%d].price", i): domain.GetValidationMessage("gte"),
			}}
		}
		items = append(items, quote.LineItem{
			Zone:        item.Zone,
			HitCount:    item.HitCount,
			Size:        item.Size,
			Complexity:  item.Complexity,
			Expectation: item.Expectation,
			Price:       item.Price,
			Observation: item.Observation,
		})
	}
	items = quote.FilterItems(items)
	if len(items) == 0 {
		return nil, &ValidationError{Fields: map[string]string{
			"items": "At least one row needs a hit count, a price or an observation",
		}}
	}

	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	doc := s.document(req, in, items)
	pdf, err := s.renderer.Render(doc)
	if err != nil {
		s.logger.Error("failed to compose quote", zap.String("request_id", id.String()), zap.Error(err))
		var compErr *quote.CompositionError
		if errors.As(err, &compErr) {
			return nil, err
		}
		return nil, &quote.CompositionError{Stage: "render", Err: err}
	}

	totals := quote.ComputeTotals(items, in.IsCombo)
	result := &QuoteResult{
		PDF:      pdf,
		Filename: quoteBaseName(doc) + ".pdf",
		Totals:   totals,
	}

	updates := map[string]interface{}{
		"status":        domain.StatusQuoteSent,
		"quoted_amount": totals.Total,
	}
	if req.Status.IsTerminal() {
		updates["completed_at"] = nil
	}

	obj, err := s.uploads.UploadDocument(ctx, storage.PrefixQuotes, quoteBaseName(doc), ".pdf", "application/pdf", pdf)
	if err != nil {
		result.UploadErr = err
		s.logger.Warn("failed to upload quote; request left unchanged",
			zap.String("request_id", id.String()),
			zap.Error(err),
		)
	} else {
		result.URL = obj.URL
		if err := s.requests.AppendAttachments(ctx, id, []string{obj.URL}, updates); err != nil {
			result.PersistErr = err
		}
	}
	if result.PersistErr != nil {
		s.logger.Error("failed to record quote",
			zap.String("request_id", id.String()),
			zap.Error(result.PersistErr),
		)
	}

	if updated, err := s.requests.GetByID(ctx, id); err == nil {
		dto := mapper.ToRequestDTO(updated)
		result.Request = &dto
		if result.URL != "" && result.PersistErr == nil {
			s.publisher.Publish(realtime.EventQuoteGenerated, dto)
		}
	}

	s.sender.Send(notify.QuoteMessage(req, result.URL, totals.Total))

	s.logger.Info("quote generated",
		zap.String("request_id", id.String()),
		zap.String("total", totals.Total.StringFixed(2)),
		zap.Bool("combo", totals.Combo),
		zap.Bool("uploaded", result.URL != ""),
	)
	return result, nil
}

// validateClassification rejects values that would print a scale line with no box checked
func validateClassification(in *domain.GenerateQuoteRequest) error {
	fields := make(map[string]string)
	for _, c := range []struct {
		field string
		value string
		scale quote.Scale
	}{
		{"damageLevel", in.DamageLevel, quote.DamageLevelScale},
		{"vehicleSegment", in.VehicleSegment, quote.VehicleSegmentScale},
		{"paintType", in.PaintType, quote.PaintTypeScale},
		{"technicalRisk", in.TechnicalRisk, quote.TechnicalRiskScale},
	} {
		if !c.scale.Accepts(c.value) {
			fields[c.field] = "Must be one of: " + strings.Join(c.scale.Options, ", ")
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *QuoteService) document(req *domain.Request, in *domain.GenerateQuoteRequest, items []quote.LineItem) quote.Document {
	issued := s.now()
	if in.IssueDate != nil {
		issued = *in.IssueDate
	}
	validity := in.ValidityDays
	if validity == 0 {
		validity = s.validityDays
	}

	party := quote.Party{
		Vehicle: req.VehicleLabel(),
		Plate:   req.Plate,
	}
	if req.Client != nil {
		party.ClientName = req.Client.Name
		party.ClientPhone = req.Client.Phone
		party.ClientEmail = req.Client.Email
		party.Location = req.Client.Location
	}

	return quote.Document{
		Reference:    strings.ToUpper(req.ID.String()[:8]),
		Issuer:       s.renderer.Issuer(),
		Party:        party,
		IssueDate:    issued,
		ValidityDays: validity,
		Combo:        in.IsCombo,
		Items:        items,
		Classification: quote.Classification{
			DamageLevel:    in.DamageLevel,
			VehicleSegment: in.VehicleSegment,
			PaintType:      in.PaintType,
			TechnicalRisk:  in.TechnicalRisk,
		},
		Observations: in.Observations,
		Techniques:   in.Techniques,
	}
}

// quoteBaseName is the download name without extension, e.g. "presupuesto-ana-perez-1a2b3c4d"
func quoteBaseName(doc quote.Document) string {
	name := "presupuesto"
	if doc.Party.ClientName != "" {
		name += " " + doc.Party.ClientName
	}
	return slug.Make(name + " " + doc.Reference)
}
