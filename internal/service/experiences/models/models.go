package models

import "github.com/m04kA/EXP-BookingService/internal/domain"

// ExperienceResponse элемент списка впечатлений
type ExperienceResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	About       string  `json:"about"`
}

// ExperienceListResponse список впечатлений
type ExperienceListResponse struct {
	Experiences []ExperienceResponse `json:"experiences"`
}

// SlotResponse слот в деталях впечатления
type SlotResponse struct {
	ID             int64  `json:"id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	AvailableSeats int    `json:"available_seats"`
	TotalSeats     int    `json:"total_seats"`
}

// ExperienceDetailResponse впечатление с предстоящими слотами
type ExperienceDetailResponse struct {
	ExperienceResponse
	Slots []SlotResponse `json:"slots"`
}

// FromDomainExperience конвертирует доменную модель впечатления в response
func FromDomainExperience(e *domain.Experience) ExperienceResponse {
	return ExperienceResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Price:       e.Price,
		ImageURL:    e.ImageURL,
		About:       e.About,
	}
}

// FromDomainExperienceList конвертирует список впечатлений в response
func FromDomainExperienceList(experiences []*domain.Experience) *ExperienceListResponse {
	out := make([]ExperienceResponse, 0, len(experiences))
	for _, e := range experiences {
		out = append(out, FromDomainExperience(e))
	}
	return &ExperienceListResponse{Experiences: out}
}

// FromDomainExperienceDetail конвертирует впечатление со слотами в response
func FromDomainExperienceDetail(e *domain.Experience, slots []*domain.Slot) *ExperienceDetailResponse {
	slotResponses := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		slotResponses = append(slotResponses, SlotResponse{
			ID:             s.ID,
			Date:           s.Date,
			Time:           s.Time,
			AvailableSeats: s.AvailableSeats,
			TotalSeats:     s.TotalSeats,
		})
	}

	return &ExperienceDetailResponse{
		ExperienceResponse: FromDomainExperience(e),
		Slots:              slotResponses,
	}
}
