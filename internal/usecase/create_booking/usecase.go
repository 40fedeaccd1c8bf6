package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/EXP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/EXP-BookingService/internal/infra/storage/booking"
	promoRepo "github.com/m04kA/EXP-BookingService/internal/infra/storage/promo"
	slotRepo "github.com/m04kA/EXP-BookingService/internal/infra/storage/slot"
	"github.com/m04kA/EXP-BookingService/internal/pricing"
)

// Количество попыток вставки при коллизии reference_id
// Нарушение уникального индекса прерывает транзакцию в PostgreSQL,
// поэтому каждая попытка выполняется в новой транзакции
const maxReferenceAttempts = 3

// Причины отказа для метрики booking_failures_total
const (
	failReasonValidation   = "validation"
	failReasonSlotNotFound = "slot_not_found"
	failReasonNoSeats      = "insufficient_seats"
	failReasonSlotBusy     = "slot_busy"
	failReasonInternal     = "internal"
)

// UseCase use case создания бронирования
// Единственная точка, где мутируется available_seats: блокировка строки слота,
// проверка мест, расчет цены, декремент и вставка бронирования выполняются
// в одной транзакции и коммитятся или откатываются вместе
type UseCase struct {
	slotRepo       SlotRepository
	experienceRepo ExperienceRepository
	promoRepo      PromoRepository
	bookingRepo    BookingRepository
	txManager      TransactionManager
	refGen         ReferenceGenerator
	metrics        Metrics
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	experienceRepo ExperienceRepository,
	promoRepo PromoRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:       slotRepo,
		experienceRepo: experienceRepo,
		promoRepo:      promoRepo,
		bookingRepo:    bookingRepo,
		txManager:      txManager,
		refGen:         &RandomReferenceGenerator{},
		metrics:        metrics,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// До коммита никакой эффект не виден другим запросам; при любой ошибке
// внутри транзакции откатываются и декремент мест, и вставка бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: experience=%d, slot=%d, quantity=%d, promo=%v",
		req.ExperienceID, req.SlotID, req.Quantity, req.PromoCode != nil)

	// 1. Валидация входных данных (до открытия транзакции)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.IncBookingFailed(failReasonValidation)
		return nil, err
	}

	// 2. Выполняем транзакцию бронирования
	// Коллизия reference_id прерывает транзакцию целиком (вместе с декрементом
	// мест), поэтому повтор - это повтор всей транзакции с новым номером
	var result *domain.Booking
	var err error

	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		result, err = uc.bookInTransaction(ctx, req)
		if err == nil {
			break
		}
		if errors.Is(err, bookingRepo.ErrReferenceConflict) {
			uc.logger.Warn("CreateBooking: reference collision, attempt %d/%d", attempt, maxReferenceAttempts)
			continue
		}
		break
	}

	if err != nil {
		if errors.Is(err, bookingRepo.ErrReferenceConflict) {
			uc.logger.Error("CreateBooking: reference collisions exhausted after %d attempts", maxReferenceAttempts)
			err = fmt.Errorf("%w: reference generation exhausted: %v", ErrInternal, err)
		}
		uc.metrics.IncBookingFailed(failReason(err))
		return nil, err
	}

	uc.metrics.IncBookingCreated()
	uc.metrics.AddSeatsReserved(result.Quantity)
	uc.logger.Info("CreateBooking: successfully created booking id=%d, reference=%s, total=%.2f",
		result.ID, result.ReferenceID, result.Total)

	return toResponse(result), nil
}

// bookInTransaction выполняет одну попытку бронирования в отдельной транзакции
func (uc *UseCase) bookInTransaction(ctx context.Context, req *Request) (*domain.Booking, error) {
	var result *domain.Booking

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Блокируем и читаем слот (SELECT ... FOR UPDATE)
		// Блокировка держится до конца транзакции и сериализует конкурирующие
		// бронирования одного слота
		slot, err := uc.slotRepo.GetForUpdate(txCtx, req.SlotID)
		if err != nil {
			switch {
			case errors.Is(err, slotRepo.ErrSlotNotFound):
				uc.logger.Warn("CreateBooking: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			case errors.Is(err, slotRepo.ErrLockTimeout):
				uc.logger.Warn("CreateBooking: lock wait timed out for slot id=%d", req.SlotID)
				return fmt.Errorf("%w: %v", ErrSlotBusy, err)
			default:
				uc.logger.Error("CreateBooking: failed to lock slot id=%d: %v", req.SlotID, err)
				return fmt.Errorf("%w: failed to lock slot: %v", ErrInternal, err)
			}
		}

		// 2. Слот должен принадлежать запрошенному впечатлению
		if slot.ExperienceID != req.ExperienceID {
			uc.logger.Warn("CreateBooking: slot id=%d belongs to experience %d, not %d",
				slot.ID, slot.ExperienceID, req.ExperienceID)
			return ErrSlotMismatch
		}

		// 3. Проверяем доступность мест под блокировкой
		if !slot.HasSeats(req.Quantity) {
			uc.logger.Warn("CreateBooking: slot id=%d has %d seats, requested %d",
				slot.ID, slot.AvailableSeats, req.Quantity)
			return ErrInsufficientSeats
		}

		// 4. Получаем цену впечатления
		// Валидный слот всегда ссылается на существующее впечатление,
		// поэтому отсутствие строки - нарушение консистентности данных
		experience, err := uc.experienceRepo.GetByID(txCtx, req.ExperienceID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get experience id=%d for valid slot id=%d: %v",
				req.ExperienceID, slot.ID, err)
			return fmt.Errorf("%w: failed to get experience: %v", ErrInternal, err)
		}

		// 5. Резолвим промокод, если указан
		// Неизвестный или неактивный код молча игнорируется (скидка 0):
		// бронирование из-за плохого промокода не отклоняется, жесткую ошибку
		// отдает только отдельный endpoint валидации промокода
		var rule *pricing.Rule
		var appliedCode *string

		if req.PromoCode != nil && *req.PromoCode != "" {
			promo, err := uc.promoRepo.GetActiveByCode(txCtx, *req.PromoCode)
			switch {
			case err == nil:
				rule = pricing.RuleFromPromo(promo)
				appliedCode = &promo.Code
			case errors.Is(err, promoRepo.ErrPromoNotFound):
				uc.logger.Info("CreateBooking: promo code %q not found or inactive, ignoring", *req.PromoCode)
			default:
				uc.logger.Error("CreateBooking: failed to resolve promo code: %v", err)
				return fmt.Errorf("%w: failed to resolve promo code: %v", ErrInternal, err)
			}
		}

		// 6. Рассчитываем стоимость
		quote := pricing.Calculate(experience.Price, req.Quantity, rule)

		// 7. Резервируем места (декремент available_seats)
		if err := uc.slotRepo.Reserve(txCtx, req.SlotID, req.Quantity); err != nil {
			if errors.Is(err, slotRepo.ErrInsufficientSeats) {
				// Под блокировкой сюда попадать не должны - проверка уже была
				uc.logger.Error("CreateBooking: guarded decrement rejected for slot id=%d", req.SlotID)
				return ErrInsufficientSeats
			}
			uc.logger.Error("CreateBooking: failed to reserve seats for slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to reserve seats: %v", ErrInternal, err)
		}

		// 8. Вставляем бронирование с замороженным снапшотом цены
		booking := &domain.Booking{
			ReferenceID:  uc.refGen.Generate(),
			ExperienceID: req.ExperienceID,
			SlotID:       req.SlotID,
			FullName:     req.FullName,
			Email:        req.Email,
			Quantity:     req.Quantity,
			PromoCode:    appliedCode,
			Discount:     quote.Discount,
			Subtotal:     quote.Subtotal,
			Taxes:        quote.Taxes,
			Total:        quote.Total,
			Status:       domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrReferenceConflict) {
				// Пробрасываем как есть: Execute повторит транзакцию с новым номером
				return err
			}
			uc.logger.Error("CreateBooking: failed to insert booking: %v", err)
			return fmt.Errorf("%w: failed to insert booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// failReason мапит ошибку usecase в причину для метрики booking_failures_total
func failReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrSlotMismatch):
		return failReasonValidation
	case errors.Is(err, ErrSlotNotFound):
		return failReasonSlotNotFound
	case errors.Is(err, ErrInsufficientSeats):
		return failReasonNoSeats
	case errors.Is(err, ErrSlotBusy):
		return failReasonSlotBusy
	default:
		return failReasonInternal
	}
}

// toResponse конвертирует доменную модель в response
func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:           b.ID,
		ReferenceID:  b.ReferenceID,
		ExperienceID: b.ExperienceID,
		SlotID:       b.SlotID,
		FullName:     b.FullName,
		Email:        b.Email,
		Quantity:     b.Quantity,
		PromoCode:    b.PromoCode,
		Discount:     b.Discount,
		Subtotal:     b.Subtotal,
		Taxes:        b.Taxes,
		Total:        b.Total,
		Status:       string(b.Status),
		BookingDate:  b.BookingDate,
	}
}
