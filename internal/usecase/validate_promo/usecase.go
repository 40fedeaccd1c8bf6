package validate_promo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	promoRepo "github.com/m04kA/EXP-BookingService/internal/infra/storage/promo"
	"github.com/m04kA/EXP-BookingService/internal/pricing"
)

// UseCase use case проверки промокода
// Информационный endpoint для UI: создание бронирования его не вызывает
// и плохой промокод там молча игнорируется - асимметрия намеренная
type UseCase struct {
	promoRepo PromoRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(promoRepo PromoRepository, logger Logger) *UseCase {
	return &UseCase{
		promoRepo: promoRepo,
		logger:    logger,
	}
}

// Execute проверяет промокод и рассчитывает скидку для переданного subtotal
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.Code) == "" {
		uc.logger.Warn("ValidatePromo: empty promo code")
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	if req.Subtotal < 0 {
		uc.logger.Warn("ValidatePromo: negative subtotal %.2f", req.Subtotal)
		return nil, fmt.Errorf("%w: subtotal must not be negative", ErrInvalidInput)
	}

	promo, err := uc.promoRepo.GetActiveByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			uc.logger.Info("ValidatePromo: promo code %q not found or inactive", req.Code)
			return nil, ErrPromoNotFound
		}
		uc.logger.Error("ValidatePromo: failed to resolve promo code: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve promo code: %v", ErrInternal, err)
	}

	// Скидка считается тем же правилом, что и при бронировании
	// (включая ограничение скидки суммой заказа)
	quote := pricing.Calculate(req.Subtotal, 1, pricing.RuleFromPromo(promo))

	uc.logger.Info("ValidatePromo: code=%s, type=%s, value=%.2f, discount=%.2f",
		promo.Code, promo.DiscountType, promo.DiscountValue, quote.Discount)

	return &Response{
		Code:          promo.Code,
		DiscountType:  string(promo.DiscountType),
		DiscountValue: promo.DiscountValue,
		Discount:      quote.Discount,
	}, nil
}
