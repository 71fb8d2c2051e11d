package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/domain"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/mapper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ClientService struct {
	clients ClientStore
	logger  *zap.Logger
}

func NewClientService(clients ClientStore, logger *zap.Logger) *ClientService {
	return &ClientService{
		clients: clients,
		logger:  logger,
	}
}

// Resolve returns the id of the client with exactly this email, creating the client when
// none exists. An existing client is never updated with the submitted name or phone.
func (s *ClientService) Resolve(ctx context.Context, contact domain.ContactInput) (uuid.UUID, error) {
	existing, err := s.clients.FindByEmail(ctx, contact.Email)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, fmt.Errorf("failed to look up client: %w", err)
	}

	client := &domain.Client{
		Name:     contact.Name,
		Phone:    contact.Phone,
		Email:    contact.Email,
		Location: contact.Location,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.logger.Info("client created", zap.String("client_id", client.ID.String()))
	return client.ID, nil
}

func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ClientWithRequestsDTO, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	dto := mapper.ToClientWithRequestsDTO(client)
	return &dto, nil
}

func (s *ClientService) List(ctx context.Context, page, pageSize int, search string) (*domain.PaginatedResponse, error) {
	page, pageSize = clampPage(page, pageSize)

	clients, total, err := s.clients.List(ctx, page, pageSize, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	dtos := make([]domain.ClientDTO, len(clients))
	for i := range clients {
		dtos[i] = mapper.ToClientDTO(&clients[i])
	}

	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}
