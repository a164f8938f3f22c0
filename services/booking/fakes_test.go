package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	referenceRepo "petclinic/database/repository/reference"
	reservationRepo "petclinic/database/repository/reservation"
	"petclinic/models"
)

// fakeReservationRepo is an in-memory store that honors the same
// partial-uniqueness rule as the Mongo index: at most one active reservation
// per (doctor, date, timeSlot).
type fakeReservationRepo struct {
	mu       sync.Mutex
	byID     map[string]*models.Reservation
	order    []string
	fetchErr error
	// beforeUpdate runs inside UpdateStatus ahead of the compare-and-set,
	// to interleave a concurrent write in tests.
	beforeUpdate func()
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{byID: map[string]*models.Reservation{}}
}

func (f *fakeReservationRepo) Create(ctx context.Context, r *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.byID {
		if existing.Active &&
			existing.DoctorID == r.DoctorID &&
			existing.Date == r.Date &&
			existing.TimeSlot == r.TimeSlot {
			return reservationRepo.ErrSlotTaken
		}
	}

	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	r.Active = r.Status.HoldsSlot()
	cp := *r
	f.byID[r.ID] = &cp
	f.order = append(f.order, r.ID)
	return nil
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReservationRepo) UpdateStatus(ctx context.Context, id string, from, to models.ReservationStatus) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.beforeUpdate != nil {
		f.beforeUpdate()
	}
	r, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrNotFound
	}
	if r.Status != from {
		return nil, reservationRepo.ErrStaleStatus
	}
	r.Status = to
	r.Active = to.HoldsSlot()
	r.UpdatedAt = time.Now()
	cp := *r
	return &cp, nil
}

func (f *fakeReservationRepo) GetBookedSlots(ctx context.Context, doctorID, date string) (models.BookedSlots, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	booked := models.BookedSlots{}
	for _, r := range f.byID {
		if r.Active && r.DoctorID == doctorID && r.Date == date {
			booked[r.TimeSlot] = struct{}{}
		}
	}
	return booked, nil
}

func (f *fakeReservationRepo) ListByClientEmail(ctx context.Context, email string) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Reservation
	for i := len(f.order) - 1; i >= 0; i-- {
		r := f.byID[f.order[i]]
		if r.Client.Email == email {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) ListByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Reservation
	for _, id := range f.order {
		r := f.byID[id]
		if r.DoctorID == doctorID && r.Date == date {
			out = append(out, *r)
		}
	}
	return out, nil
}

// fakeReferenceRepo knows one doctor (doc-1) and one service (svc-1).
// Setting dirErr makes every directory lookup fail, to exercise the
// shape-only validation fallback.
type fakeReferenceRepo struct {
	categories []models.AnimalCategory
	dirErr     error
}

func (f *fakeReferenceRepo) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	if f.dirErr != nil {
		return nil, f.dirErr
	}
	return []models.Doctor{{ID: "doc-1", Name: "Dr. Reyes", Active: true}}, nil
}

func (f *fakeReferenceRepo) GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error) {
	if f.dirErr != nil {
		return nil, f.dirErr
	}
	if id != "doc-1" {
		return nil, referenceRepo.ErrNotFound
	}
	return &models.Doctor{ID: id, Name: "Dr. Reyes", Active: true}, nil
}

func (f *fakeReferenceRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	if f.dirErr != nil {
		return nil, f.dirErr
	}
	return []models.Service{{ID: "svc-1", Name: "Consultation"}}, nil
}

func (f *fakeReferenceRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	if f.dirErr != nil {
		return nil, f.dirErr
	}
	if id != "svc-1" {
		return nil, referenceRepo.ErrNotFound
	}
	return &models.Service{ID: id, Name: "Consultation"}, nil
}

func (f *fakeReferenceRepo) ListAnimalCategories(ctx context.Context) ([]models.AnimalCategory, error) {
	if f.dirErr != nil {
		return nil, f.dirErr
	}
	if f.categories != nil {
		return f.categories, nil
	}
	return []models.AnimalCategory{
		{ID: "cat-1", Name: "Dog"},
		{ID: "cat-2", Name: "Cat"},
	}, nil
}

// newTestService wires a service against the fakes and a miniredis-backed
// session store.
func newTestService(t *testing.T) (*DefaultBookingService, *fakeReservationRepo) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := newFakeReservationRepo()
	svc := &DefaultBookingService{
		Repo:      repo,
		Reference: &fakeReferenceRepo{},
		Sessions:  NewSessionStore(client),
	}
	return svc, repo
}

func validClient() models.ClientInfo {
	return models.ClientInfo{
		Name:   "Maria Santos",
		Email:  "maria@example.com",
		Mobile: "09171234567",
		Gender: "female",
	}
}

func validPet() models.PetInfo {
	return models.PetInfo{Name: "Biscuit", Category: "Dog", Age: 3, Weight: 12.5}
}

func validReservation() models.ReservationInfo {
	return models.ReservationInfo{
		ServiceID: "svc-1",
		DoctorID:  "doc-1",
		Date:      time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		TimeSlot:  "10:00 AM",
	}
}

// advanceToDetails walks a fresh session through the first two steps.
func advanceToDetails(t *testing.T, svc *DefaultBookingService) string {
	t.Helper()
	ctx := context.Background()

	draft, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if _, err := svc.SubmitClientInfo(ctx, draft.SessionID, validClient()); err != nil {
		t.Fatalf("SubmitClientInfo: %v", err)
	}
	if _, err := svc.SubmitPetInfo(ctx, draft.SessionID, validPet()); err != nil {
		t.Fatalf("SubmitPetInfo: %v", err)
	}
	return draft.SessionID
}
