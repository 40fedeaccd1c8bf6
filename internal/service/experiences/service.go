package experiences

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/EXP-BookingService/internal/domain"
	experienceRepo "github.com/m04kA/EXP-BookingService/internal/infra/storage/experience"
	"github.com/m04kA/EXP-BookingService/internal/service/experiences/models"
)

// Service сервис каталога впечатлений
// Только чтение: без транзакций и блокировок
type Service struct {
	experienceRepo ExperienceRepository
	slotRepo       SlotRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	experienceRepo ExperienceRepository,
	slotRepo SlotRepository,
	logger Logger,
) *Service {
	return &Service{
		experienceRepo: experienceRepo,
		slotRepo:       slotRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// List возвращает все впечатления, опционально отфильтрованные поиском
// по названию, локации и описанию
func (s *Service) List(ctx context.Context, search string) (*models.ExperienceListResponse, error) {
	s.logger.Info("ListExperiences: search=%q", search)

	experiences, err := s.experienceRepo.List(ctx, search)
	if err != nil {
		s.logger.Error("ListExperiences: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListExperiences: found %d experiences", len(experiences))
	return models.FromDomainExperienceList(experiences), nil
}

// GetByID возвращает впечатление вместе с предстоящими слотами
// (дата слота >= сегодняшней, сортировка по дате и времени)
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ExperienceDetailResponse, error) {
	s.logger.Info("GetExperience: fetching experience id=%d", id)

	experience, err := s.experienceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, experienceRepo.ErrExperienceNotFound) {
			s.logger.Warn("GetExperience: experience id=%d not found", id)
			return nil, ErrExperienceNotFound
		}
		s.logger.Error("GetExperience: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	slots, err := s.slotRepo.ListByExperience(ctx, id, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("GetExperience: failed to list slots for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to list slots: %v", ErrInternal, err)
	}

	s.logger.Info("GetExperience: experience id=%d has %d upcoming slots", id, len(slots))
	return models.FromDomainExperienceDetail(experience, slots), nil
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает сегодняшнюю дату строкой YYYY-MM-DD
func (p *RealTimeProvider) Now() string {
	return time.Now().Format(domain.DateFormat)
}
