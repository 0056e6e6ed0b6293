package catalog

import (
	"context"

	"bookease/internal/domain"
)

// ServiceRepository is the catalog store slice this module uses. Reads are
// public; Create sits behind the admin gate.
type ServiceRepository interface {
	GetAll(ctx context.Context) ([]domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) error
}

type Service struct {
	services ServiceRepository
}

func NewService(services ServiceRepository) *Service {
	return &Service{services: services}
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.GetAll(ctx)
}

func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	return s.services.GetByID(ctx, id)
}

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	svc := &domain.Service{
		Title:       req.Title,
		Category:    domain.ServiceCategory(req.Category),
		Location:    req.Location,
		PricePerDay: req.PricePerDay,
		Image:       req.Image,
		Available:   req.Available,
		Badge:       req.Badge,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}
