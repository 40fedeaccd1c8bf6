package validate_promo

import (
	"errors"
	"net/http"

	"github.com/m04kA/EXP-BookingService/internal/api/handlers"
	validatePromo "github.com/m04kA/EXP-BookingService/internal/usecase/validate_promo"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgCodeRequired       = "Promo code is required"
	msgInvalidPromo       = "Invalid or expired promo code"
	msgFailedToValidate   = "Failed to validate promo code"
)

type Handler struct {
	useCase ValidatePromoUseCase
	logger  Logger
}

func NewHandler(useCase ValidatePromoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/promo/validate
// Намеренная асимметрия с созданием бронирования: здесь плохой промокод -
// жесткий 404, при бронировании тот же код молча игнорируется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidatePromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promo/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, validatePromo.ErrInvalidInput):
			h.logger.Warn("POST /promo/validate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgCodeRequired)

		case errors.Is(err, validatePromo.ErrPromoNotFound):
			h.logger.Info("POST /promo/validate - Invalid promo code: %q", req.Code)
			handlers.RespondJSON(w, http.StatusNotFound, InvalidPromoResponse{
				Valid: false,
				Error: msgInvalidPromo,
			})

		default:
			h.logger.Error("POST /promo/validate - Failed: code=%q, error=%v", req.Code, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgFailedToValidate)
		}
		return
	}

	h.logger.Info("POST /promo/validate - Valid promo: code=%q, discount=%.2f", req.Code, result.Discount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
