package list_experiences

import (
	"context"

	"github.com/m04kA/EXP-BookingService/internal/service/experiences/models"
)

type ExperiencesService interface {
	List(ctx context.Context, search string) (*models.ExperienceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
