package experiences

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EXP-BookingService/internal/domain"
	experienceRepo "github.com/m04kA/EXP-BookingService/internal/infra/storage/experience"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubExperienceRepo struct {
	list []*domain.Experience
	one  *domain.Experience
	err  error

	gotSearch string
}

func (r *stubExperienceRepo) List(_ context.Context, search string) ([]*domain.Experience, error) {
	r.gotSearch = search
	return r.list, r.err
}

func (r *stubExperienceRepo) GetByID(context.Context, int64) (*domain.Experience, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.one, nil
}

type stubSlotRepo struct {
	slots []*domain.Slot
	err   error

	gotFromDate string
}

func (r *stubSlotRepo) ListByExperience(_ context.Context, _ int64, fromDate string) ([]*domain.Slot, error) {
	r.gotFromDate = fromDate
	return r.slots, r.err
}

type fixedTime struct{ date string }

func (p fixedTime) Now() string { return p.date }

func newTestService(er ExperienceRepository, sr SlotRepository, tp TimeProvider) *Service {
	s := NewService(er, sr, nopLogger{})
	s.timeProvider = tp
	return s
}

func TestList_PassesSearchThrough(t *testing.T) {
	repo := &stubExperienceRepo{list: []*domain.Experience{
		{ID: 1, Title: "Kayaking", Location: "Udupi", Price: 999},
	}}
	svc := newTestService(repo, &stubSlotRepo{}, fixedTime{"2025-10-15"})

	resp, err := svc.List(context.Background(), "kayak")

	require.NoError(t, err)
	assert.Equal(t, "kayak", repo.gotSearch)
	require.Len(t, resp.Experiences, 1)
	assert.Equal(t, "Kayaking", resp.Experiences[0].Title)
}

func TestList_EmptyCatalog(t *testing.T) {
	svc := newTestService(&stubExperienceRepo{}, &stubSlotRepo{}, fixedTime{"2025-10-15"})

	resp, err := svc.List(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, resp.Experiences)
	assert.Empty(t, resp.Experiences)
}

func TestGetByID_IncludesUpcomingSlots(t *testing.T) {
	er := &stubExperienceRepo{one: &domain.Experience{ID: 1, Title: "Kayaking", Price: 999}}
	sr := &stubSlotRepo{slots: []*domain.Slot{
		{ID: 10, ExperienceID: 1, Date: "2025-10-15", Time: "07:00", AvailableSeats: 4, TotalSeats: 10},
		{ID: 11, ExperienceID: 1, Date: "2025-10-15", Time: "13:00", AvailableSeats: 0, TotalSeats: 10},
	}}
	svc := newTestService(er, sr, fixedTime{"2025-10-15"})

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	// Слоты фильтруются от сегодняшней даты (строкой)
	assert.Equal(t, "2025-10-15", sr.gotFromDate)
	require.Len(t, resp.Slots, 2)
	// Распроданные слоты остаются в выдаче с нулем мест
	assert.Equal(t, 0, resp.Slots[1].AvailableSeats)
}

func TestGetByID_NotFound(t *testing.T) {
	er := &stubExperienceRepo{err: experienceRepo.ErrExperienceNotFound}
	svc := newTestService(er, &stubSlotRepo{}, fixedTime{"2025-10-15"})

	_, err := svc.GetByID(context.Background(), 999)

	require.ErrorIs(t, err, ErrExperienceNotFound)
}

func TestGetByID_SlotListingFailure(t *testing.T) {
	er := &stubExperienceRepo{one: &domain.Experience{ID: 1}}
	sr := &stubSlotRepo{err: errors.New("connection refused")}
	svc := newTestService(er, sr, fixedTime{"2025-10-15"})

	_, err := svc.GetByID(context.Background(), 1)

	require.ErrorIs(t, err, ErrInternal)
}
