package get_experience

import (
	"context"

	"github.com/m04kA/EXP-BookingService/internal/service/experiences/models"
)

type ExperiencesService interface {
	GetByID(ctx context.Context, id int64) (*models.ExperienceDetailResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
