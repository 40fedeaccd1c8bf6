package get_experience

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/EXP-BookingService/internal/api/handlers"
	"github.com/m04kA/EXP-BookingService/internal/service/experiences"
)

const (
	msgInvalidID          = "Invalid experience id"
	msgExperienceNotFound = "Experience not found"
	msgFailedToFetch      = "Failed to fetch experience details"
)

type Handler struct {
	service ExperiencesService
	logger  Logger
}

func NewHandler(service ExperiencesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/experiences/{experienceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["experienceId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("GET /experiences/{id} - Invalid id: %q", vars["experienceId"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, experiences.ErrExperienceNotFound) {
			h.logger.Warn("GET /experiences/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgExperienceNotFound)
			return
		}
		h.logger.Error("GET /experiences/{id} - Failed: id=%d, error=%v", id, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFailedToFetch)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
