package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/EXP-BookingService/internal/api/handlers"
	"github.com/m04kA/EXP-BookingService/internal/service/bookings"
)

const (
	msgInvalidReference = "Invalid booking reference"
	msgBookingNotFound  = "Booking not found"
	msgFailedToFetch    = "Failed to fetch booking"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{referenceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	referenceID := vars["referenceId"]

	result, err := h.service.GetByReference(r.Context(), referenceID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{referenceId} - Invalid reference: %q", referenceID)
			handlers.RespondBadRequest(w, msgInvalidReference)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{referenceId} - Not found: %q", referenceID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{referenceId} - Failed: %q, error=%v", referenceID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgFailedToFetch)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
