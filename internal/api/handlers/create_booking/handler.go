package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/EXP-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/EXP-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Missing required fields"
	msgSlotNotFound       = "Slot not found"
	msgSlotMismatch       = "Slot does not belong to this experience"
	msgNotEnoughSeats     = "Not enough seats available"
	msgSlotBusy           = "Slot is being booked by another request, please retry"
	msgFailedToCreate     = "Failed to create booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: experience_id=%d, slot_id=%d: %v",
				req.ExperienceID, req.SlotID, err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotMismatch):
			h.logger.Warn("POST /bookings - Slot mismatch: experience_id=%d, slot_id=%d",
				req.ExperienceID, req.SlotID)
			handlers.RespondBadRequest(w, msgSlotMismatch)

		case errors.Is(err, createBooking.ErrInsufficientSeats):
			h.logger.Warn("POST /bookings - Not enough seats: slot_id=%d, quantity=%d",
				req.SlotID, req.Quantity)
			handlers.RespondBadRequest(w, msgNotEnoughSeats)

		case errors.Is(err, createBooking.ErrSlotBusy):
			h.logger.Warn("POST /bookings - Slot busy: slot_id=%d", req.SlotID)
			handlers.RespondConflict(w, msgSlotBusy)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: experience_id=%d, slot_id=%d, error=%v",
				req.ExperienceID, req.SlotID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgFailedToCreate)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, reference=%s",
		result.ID, result.ReferenceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
