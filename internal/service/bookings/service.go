package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "github.com/m04kA/EXP-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/EXP-BookingService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
// Бронирование иммутабельно после создания, поэтому сервис только читает
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByReference получает бронирование по публичному номеру
// Номер нормализуется к верхнему регистру
func (s *Service) GetByReference(ctx context.Context, referenceID string) (*models.BookingResponse, error) {
	referenceID = strings.ToUpper(strings.TrimSpace(referenceID))
	if referenceID == "" {
		return nil, fmt.Errorf("%w: referenceId is required", ErrInvalidInput)
	}

	s.logger.Info("GetBooking: fetching booking reference=%s", referenceID)

	booking, err := s.bookingRepo.GetByReferenceID(ctx, referenceID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetBooking: booking reference=%s not found", referenceID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetBooking: repository error for reference=%s: %v", referenceID, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBooking: successfully fetched booking id=%d", booking.ID)
	return models.FromDomainBooking(booking), nil
}
