package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/mapper"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/notify"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/realtime"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/storage"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// IntakeService turns public form submissions into stored requests. Each submission
// is validated and pre-qualified before any upload or database access; photos are
// uploaded one by one, then the client is resolved and the request inserted once.
// The operator notification is queued last and never affects the outcome.
type IntakeService struct {
	clients    *ClientService
	requests   RequestStore
	uploads    *UploadService
	thresholds Thresholds
	maxFiles   int
	sender     Sender
	publisher  Publisher
	logger     *zap.Logger
}

func NewIntakeService(
	clients *ClientService,
	requests RequestStore,
	uploads *UploadService,
	thresholds Thresholds,
	maxFiles int,
	sender Sender,
	publisher Publisher,
	logger *zap.Logger,
) *IntakeService {
	if sender == nil {
		sender = nopSender{}
	}
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &IntakeService{
		clients:    clients,
		requests:   requests,
		uploads:    uploads,
		thresholds: thresholds,
		maxFiles:   maxFiles,
		sender:     sender,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *IntakeService) checkFiles(photos []FileUpload) error {
	if s.maxFiles > 0 && len(photos) > s.maxFiles {
		return &ValidationError{Fields: map[string]string{
			"photos": fmt.Sprintf("At most %d files per submission", s.maxFiles),
		}}
	}
	return nil
}

func baseRequest(line domain.ServiceLine, v domain.VehicleInput) *domain.Request {
	return &domain.Request{
		ServiceLine:  line,
		VehicleMake:  strings.TrimSpace(v.Make),
		VehicleModel: strings.TrimSpace(v.Model),
		VehicleYear:  ParseYear(v.Year),
		Plate:        strings.ToUpper(strings.TrimSpace(v.Plate)),
		Version:      1,
	}
}

// SubmitPuntual stores an ad hoc repair quote request
func (s *IntakeService) SubmitPuntual(ctx context.Context, in *domain.PuntualIntakeRequest, photos []FileUpload) (*domain.IntakeResultDTO, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.checkFiles(photos); err != nil {
		return nil, err
	}

	req := baseRequest(domain.ServiceLinePuntual, in.Vehicle)
	req.Status = domain.InitialStatus(domain.ServiceLinePuntual)
	req.DamageType = in.DamageType
	req.DamageZones = in.DamageZones
	req.DamageNotes = in.DamageNotes
	req.Puntual = &domain.PuntualDetail{
		PreferredContact: in.PreferredContact,
		PreferredTime:    in.PreferredTime,
	}

	return s.store(ctx, in.Contact, req, photos, domain.QualificationMessageSubmitted)
}

// SubmitCobertura stores a coverage plan application with its pre-qualification outcome
func (s *IntakeService) SubmitCobertura(ctx context.Context, in *domain.CoberturaIntakeRequest, photos []FileUpload) (*domain.IntakeResultDTO, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.checkFiles(photos); err != nil {
		return nil, err
	}

	// a missing year or franchise counts as 0 and falls to manual review
	franchise := ParseFranchise(in.Franchise)
	result := Qualify(QualificationInput{
		Year:           ParseYear(in.Vehicle.Year),
		Franchise:      franchise,
		PaintOriginal:  in.PaintOriginal,
		DamageCategory: in.DamageCategory,
		PlanTier:       in.PlanTier,
	}, s.thresholds)
	detail := &domain.CoberturaDetail{
		Franchise:      franchise,
		PaintOriginal:  in.PaintOriginal,
		DamageCategory: in.DamageCategory,
		PlanTier:       in.PlanTier,
		Qualified:      result.Qualified,
		Message:        result.Message,
	}
	status := result.Status

	req := baseRequest(domain.ServiceLineCobertura, in.Vehicle)
	req.Status = status
	req.DamageType = in.DamageCategory
	req.DamageZones = in.DamageZones
	req.DamageNotes = in.DamageNotes
	req.Cobertura = detail

	return s.store(ctx, in.Contact, req, photos, detail.Message)
}

// SubmitDemo stores a demo-service request
func (s *IntakeService) SubmitDemo(ctx context.Context, in *domain.DemoIntakeRequest, photos []FileUpload) (*domain.IntakeResultDTO, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := s.checkFiles(photos); err != nil {
		return nil, err
	}

	detail := &domain.DemoDetail{
		Address:      in.Address,
		VehicleCount: in.VehicleCount,
	}
	if detail.VehicleCount == 0 {
		detail.VehicleCount = 1
	}
	if in.PreferredDate != "" {
		day, err := time.Parse("2006-01-02", in.PreferredDate)
		if err != nil {
			return nil, &ValidationError{Fields: map[string]string{"preferredDate": domain.GetValidationMessage("datetime")}}
		}
		date := datatypes.Date(day)
		detail.PreferredDate = &date
	}

	req := baseRequest(domain.ServiceLineDemo, in.Vehicle)
	req.Status = domain.InitialStatus(domain.ServiceLineDemo)
	req.DamageNotes = in.DamageNotes
	req.Demo = detail

	return s.store(ctx, in.Contact, req, photos, domain.QualificationMessageSubmitted)
}

func (s *IntakeService) store(ctx context.Context, contact domain.ContactInput, req *domain.Request, photos []FileUpload, message domain.QualificationMessage) (*domain.IntakeResultDTO, error) {
	uploaded := s.uploads.UploadBatch(ctx, storage.PrefixPhotos, photos, true)
	req.Photos = uploaded.URLs

	clientID, err := s.clients.Resolve(ctx, contact)
	if err != nil {
		return nil, &DatabaseError{Op: "resolve client", Err: err}
	}
	req.ClientID = clientID

	if err := s.requests.Create(ctx, req); err != nil {
		return nil, &DatabaseError{Op: "create request", Err: err}
	}

	s.logger.Info("request submitted",
		zap.String("request_id", req.ID.String()),
		zap.String("service_line", string(req.ServiceLine)),
		zap.String("status", string(req.Status)),
		zap.Int("photos", uploaded.Uploaded()),
		zap.Int("photos_failed", uploaded.FailedCount()),
	)

	client := &domain.Client{Name: contact.Name, Email: contact.Email, Phone: contact.Phone, Location: contact.Location}
	s.sender.Send(notify.IntakeMessage(req, client, uploaded.FailedCount()))

	dto := mapper.ToRequestDTO(req)
	s.publisher.Publish(realtime.EventRequestCreated, dto)

	return &domain.IntakeResultDTO{
		RequestID:    req.ID,
		Status:       req.Status,
		Message:      message,
		MessageText:  MessageText(message),
		PhotosSent:   uploaded.Uploaded(),
		PhotosFailed: uploaded.FailedCount(),
	}, nil
}
