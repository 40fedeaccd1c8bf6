package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EXP-BookingService/internal/service/bookings"
	"github.com/m04kA/EXP-BookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	resp *models.BookingResponse
	err  error
}

func (s *stubService) GetByReference(context.Context, string) (*models.BookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func doRequest(t *testing.T, svc BookingsService, reference string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{referenceId}", h.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+reference, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Found(t *testing.T) {
	svc := &stubService{resp: &models.BookingResponse{
		ID:          7,
		ReferenceID: "AB12CD34",
		Status:      "confirmed",
		Total:       2118,
	}}

	rec := doRequest(t, svc, "AB12CD34")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "AB12CD34", resp.ReferenceID)
	assert.Equal(t, 2118.0, resp.Total)
}

func TestHandle_NotFound(t *testing.T) {
	rec := doRequest(t, &stubService{err: bookings.ErrBookingNotFound}, "NOPENOPE")

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidReference(t *testing.T) {
	rec := doRequest(t, &stubService{err: bookings.ErrInvalidInput}, "%20")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	rec := doRequest(t, &stubService{err: bookings.ErrInternal}, "AB12CD34")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
