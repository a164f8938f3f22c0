package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petclinic/handlers"
	"petclinic/models"
	"petclinic/routes"
	"petclinic/services/booking"
)

// stubService overrides only the methods a test exercises; calling anything
// else panics through the embedded nil interface.
type stubService struct {
	booking.BookingService

	getSessionFn       func(ctx context.Context, id string) (*models.ReservationDraft, error)
	submitClientFn     func(ctx context.Context, id string, info models.ClientInfo) (*models.ReservationDraft, error)
	submitDetailsFn    func(ctx context.Context, id string, info models.ReservationInfo) (*models.DraftResponse, error)
	confirmFn          func(ctx context.Context, id string) (*models.Reservation, error)
	doctorScheduleFn   func(ctx context.Context, doctorID, date string) ([]models.Reservation, error)
	getAvailabilityFn  func(ctx context.Context, doctorID, date string) (*models.SlotAvailability, error)
	transitionStatusFn func(ctx context.Context, id string, next models.ReservationStatus, actor booking.Actor) (*models.Reservation, error)
}

func (s *stubService) GetSession(ctx context.Context, id string) (*models.ReservationDraft, error) {
	return s.getSessionFn(ctx, id)
}

func (s *stubService) SubmitClientInfo(ctx context.Context, id string, info models.ClientInfo) (*models.ReservationDraft, error) {
	return s.submitClientFn(ctx, id, info)
}

func (s *stubService) SubmitReservationInfo(ctx context.Context, id string, info models.ReservationInfo) (*models.DraftResponse, error) {
	return s.submitDetailsFn(ctx, id, info)
}

func (s *stubService) ConfirmReservation(ctx context.Context, id string) (*models.Reservation, error) {
	return s.confirmFn(ctx, id)
}

func (s *stubService) DoctorSchedule(ctx context.Context, doctorID, date string) ([]models.Reservation, error) {
	return s.doctorScheduleFn(ctx, doctorID, date)
}

func (s *stubService) GetAvailability(ctx context.Context, doctorID, date string) (*models.SlotAvailability, error) {
	return s.getAvailabilityFn(ctx, doctorID, date)
}

func (s *stubService) TransitionStatus(ctx context.Context, id string, next models.ReservationStatus, actor booking.Actor) (*models.Reservation, error) {
	return s.transitionStatusFn(ctx, id, next, actor)
}

func newRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterBookingRoutes(r, handlers.NewBookingHandler(svc))
	routes.RegisterReservationRoutes(r, handlers.NewReservationHandler(svc))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetAvailabilityRequiresDoctorAndDate(t *testing.T) {
	r := newRouter(&stubService{})

	for _, path := range []string{
		"/api/booking/availability",
		"/api/booking/availability?doctor=doc-1",
		"/api/booking/availability?date=2026-09-10",
	} {
		w := doJSON(t, r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestGetAvailabilityReturnsSlotStates(t *testing.T) {
	svc := &stubService{
		getAvailabilityFn: func(ctx context.Context, doctorID, date string) (*models.SlotAvailability, error) {
			return booking.BuildAvailability(doctorID, date, models.BookedSlots{"09:00 AM": {}}), nil
		},
	}
	r := newRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/api/booking/availability?doctor=doc-1&date=2026-09-10", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.SlotAvailability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "doc-1", got.DoctorID)
	assert.Len(t, got.Slots, len(booking.SlotCatalog()))
	assert.True(t, got.Slots[0].Booked)
	assert.False(t, got.Slots[1].Booked)
}

func TestGetSessionUnknownIs404(t *testing.T) {
	svc := &stubService{
		getSessionFn: func(ctx context.Context, id string) (*models.ReservationDraft, error) {
			return nil, booking.ErrSessionNotFound
		},
	}
	r := newRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/api/booking/session/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitClientInfoValidationIs422WithFields(t *testing.T) {
	svc := &stubService{
		submitClientFn: func(ctx context.Context, id string, info models.ClientInfo) (*models.ReservationDraft, error) {
			return nil, &booking.ValidationError{
				Step:   models.StepClientInfo,
				Fields: map[string]string{"email": "a valid email address is required"},
			}
		},
	}
	r := newRouter(svc)

	w := doJSON(t, r, http.MethodPut, "/api/booking/session/s1/client", `{"name":"Maria","email":"bad"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Fields, "email")
}

func TestStaleSlotSubmitReturnsAvailability(t *testing.T) {
	svc := &stubService{
		submitDetailsFn: func(ctx context.Context, id string, info models.ReservationInfo) (*models.DraftResponse, error) {
			return &models.DraftResponse{
					Availability: booking.BuildAvailability("doc-1", info.Date, models.BookedSlots{info.TimeSlot: {}}),
				}, &booking.ValidationError{
					Step:   models.StepReservationInfo,
					Fields: map[string]string{"timeSlot": "time slot is no longer available"},
				}
		},
	}
	r := newRouter(svc)

	w := doJSON(t, r, http.MethodPut, "/api/booking/session/s1/details",
		`{"serviceId":"svc-1","doctorId":"doc-1","date":"2026-09-10","timeSlot":"09:00 AM"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"availability"`)
}

func TestConfirmConflictIs409WithBookedSlots(t *testing.T) {
	svc := &stubService{
		confirmFn: func(ctx context.Context, id string) (*models.Reservation, error) {
			return nil, &booking.ConflictError{
				DoctorID:    "doc-1",
				Date:        "2026-09-10",
				TimeSlot:    "09:00 AM",
				BookedSlots: models.BookedSlots{"09:00 AM": {}},
			}
		},
	}
	r := newRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session/s1/confirm", "")
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"bookedSlots"`)
	assert.Contains(t, w.Body.String(), "09:00 AM")
}

func TestScheduleRequiresDoctorAndDate(t *testing.T) {
	r := newRouter(&stubService{})

	for _, path := range []string{
		"/api/reservations/schedule",
		"/api/reservations/schedule?doctor=doc-1",
		"/api/reservations/schedule?date=2026-09-10",
	} {
		w := doJSON(t, r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestScheduleReturnsDayReservations(t *testing.T) {
	svc := &stubService{
		doctorScheduleFn: func(ctx context.Context, doctorID, date string) ([]models.Reservation, error) {
			return []models.Reservation{
				{ID: "s1", DoctorID: doctorID, Date: date, TimeSlot: "09:00 AM", Status: models.StatusConfirmed},
			}, nil
		},
	}
	r := newRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/api/reservations/schedule?doctor=doc-1&date=2026-09-10", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"s1"`)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	r := newRouter(&stubService{})

	w := doJSON(t, r, http.MethodPut, "/api/reservations/r1/status", `{"status":"scheduled","actor":"staff"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusLifecycleRejectionIs409(t *testing.T) {
	svc := &stubService{
		transitionStatusFn: func(ctx context.Context, id string, next models.ReservationStatus, actor booking.Actor) (*models.Reservation, error) {
			return nil, &booking.LifecycleError{
				From:   models.StatusCompleted,
				To:     models.StatusCancelled,
				Reason: "completed is terminal",
			}
		},
	}
	r := newRouter(svc)

	w := doJSON(t, r, http.MethodPut, "/api/reservations/r1/status", `{"status":"cancelled","actor":"owner"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}
