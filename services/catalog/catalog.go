package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "doctorsportal/database/repository/catalog"
	"doctorsportal/models"

	"go.uber.org/zap"
)

var ErrDuplicateService = errors.New("a service with this name already exists")

// CatalogService exposes the appointment service catalog.
type CatalogService interface {
	ListSpecialities(ctx context.Context) ([]models.ServiceName, error)
	AddOffering(ctx context.Context, offering models.ServiceOffering) (*models.InsertResult, error)
}

type DefaultCatalogService struct {
	Repo   catalogRepo.CatalogRepository
	Logger *zap.Logger
}

func NewCatalogService(repo catalogRepo.CatalogRepository, logger *zap.Logger) *DefaultCatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultCatalogService{Repo: repo, Logger: logger}
}

func (s *DefaultCatalogService) ListSpecialities(ctx context.Context) ([]models.ServiceName, error) {
	names, err := s.Repo.ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list specialities: %w", err)
	}
	return names, nil
}

// AddOffering seeds a service with its daily slot template.
func (s *DefaultCatalogService) AddOffering(ctx context.Context, offering models.ServiceOffering) (*models.InsertResult, error) {
	id, err := s.Repo.Create(ctx, &offering)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrDuplicateName) {
			return nil, ErrDuplicateService
		}
		return nil, fmt.Errorf("failed to add service: %w", err)
	}
	s.Logger.Info("service offering added",
		zap.String("serviceID", id),
		zap.String("name", offering.Name),
		zap.Int("slots", len(offering.Slots)),
	)
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}
