package list_experiences

import (
	"net/http"

	"github.com/m04kA/EXP-BookingService/internal/api/handlers"
)

const msgFailedToFetch = "Failed to fetch experiences"

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

// Handle GET /api/v1/experiences?search=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	result, err := h.service.List(r.Context(), search)
	if err != nil {
		h.logger.Error("GET /experiences - Failed to list experiences: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFailedToFetch)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result.Experiences)
}
