package repository

import (
	"context"
	"time"

	"bookease/internal/domain"

	"gorm.io/gorm"
)

// ServiceRepository stores the bookable catalog items.
type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type serviceModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title"`
	Category    string    `gorm:"column:category"`
	Location    string    `gorm:"column:location"`
	PricePerDay float64   `gorm:"column:price_per_day"`
	Image       *string   `gorm:"column:image"`
	Available   bool      `gorm:"column:available"`
	Badge       *string   `gorm:"column:badge"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (serviceModel) TableName() string { return "services" }

func toDomainService(m serviceModel) *domain.Service {
	var image, badge string
	if m.Image != nil {
		image = *m.Image
	}
	if m.Badge != nil {
		badge = *m.Badge
	}

	return &domain.Service{
		ID:          m.ID,
		Title:       m.Title,
		Category:    domain.ServiceCategory(m.Category),
		Location:    m.Location,
		PricePerDay: m.PricePerDay,
		Image:       image,
		Available:   m.Available,
		Badge:       badge,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toServiceModel(s *domain.Service) serviceModel {
	var image, badge *string
	if s.Image != "" {
		v := s.Image
		image = &v
	}
	if s.Badge != "" {
		v := s.Badge
		badge = &v
	}

	return serviceModel{
		ID:          s.ID,
		Title:       s.Title,
		Category:    string(s.Category),
		Location:    s.Location,
		PricePerDay: s.PricePerDay,
		Image:       image,
		Available:   s.Available,
		Badge:       badge,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var m serviceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainService(m), nil
}

func (r *ServiceRepository) GetAll(ctx context.Context) ([]domain.Service, error) {
	var rows []serviceModel
	tx := r.db.WithContext(ctx).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Service, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	m := toServiceModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainService(m)
	return nil
}
