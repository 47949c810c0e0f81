package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"gocamp/constants"
	"gocamp/dto"
	"gocamp/models"
	"gocamp/repository"
)

// fakeStore giả lập storage in-memory cho test, implement cả ba
// repository interface. Mutex giữ cho CreateIfAvailable có cùng
// tính chất critical section như bản Postgres.
type fakeStore struct {
	mu           sync.Mutex
	campsites    map[uint]*models.Campsite
	windows      map[uint]*models.UnavailabilityWindow
	bookings     map[uint]*models.Booking
	payments     map[string]*models.Payment
	nextID       uint
	failComplete map[uint]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		campsites:    make(map[uint]*models.Campsite),
		windows:      make(map[uint]*models.UnavailabilityWindow),
		bookings:     make(map[uint]*models.Booking),
		payments:     make(map[string]*models.Payment),
		failComplete: make(map[uint]error),
	}
}

func (s *fakeStore) nextSeq() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) addCampsite(ownerID uint, nightlyPrice, cleaningFee float64) *models.Campsite {
	s.mu.Lock()
	defer s.mu.Unlock()
	campsite := &models.Campsite{
		ID:           s.nextSeq(),
		OwnerID:      ownerID,
		NightlyPrice: nightlyPrice,
		CleaningFee:  cleaningFee,
	}
	s.campsites[campsite.ID] = campsite
	return campsite
}

func (s *fakeStore) addWindow(campsiteID uint, start, end time.Time) *models.UnavailabilityWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	window := &models.UnavailabilityWindow{
		ID:         s.nextSeq(),
		CampsiteID: campsiteID,
		StartDate:  start,
		EndDate:    end,
	}
	s.windows[window.ID] = window
	return window
}

func (s *fakeStore) addBooking(campsiteID, renterID uint, start, end time.Time, status string) *models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking := &models.Booking{
		ID:         s.nextSeq(),
		CampsiteID: campsiteID,
		RenterID:   renterID,
		StartDate:  start,
		EndDate:    end,
		Status:     status,
		CreatedAt:  time.Now(),
	}
	s.bookings[booking.ID] = booking
	return booking
}

func rangesOverlap(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

func (s *fakeStore) overlapLocked(campsiteID uint, start, end time.Time, excludeBookingID uint) bool {
	for _, b := range s.bookings {
		if b.CampsiteID != campsiteID || b.Status == constants.BookingStatusCancelled {
			continue
		}
		if excludeBookingID != 0 && b.ID == excludeBookingID {
			continue
		}
		if rangesOverlap(b.StartDate, b.EndDate, start, end) {
			return true
		}
	}
	return false
}

func (s *fakeStore) windowOverlapLocked(campsiteID uint, start, end time.Time) bool {
	for _, w := range s.windows {
		if w.CampsiteID == campsiteID && rangesOverlap(w.StartDate, w.EndDate, start, end) {
			return true
		}
	}
	return false
}

// ---- BookingRepo ----

func (s *fakeStore) CreateIfAvailable(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.campsites[booking.CampsiteID]; !ok {
		return repository.ErrNotFound
	}
	if s.overlapLocked(booking.CampsiteID, booking.StartDate, booking.EndDate, 0) {
		return repository.ErrDateOverlap
	}
	if s.windowOverlapLocked(booking.CampsiteID, booking.StartDate, booking.EndDate) {
		return repository.ErrDateOverlap
	}

	booking.ID = s.nextSeq()
	booking.CreatedAt = time.Now()
	saved := *booking
	s.bookings[booking.ID] = &saved
	return nil
}

func (s *fakeStore) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *fakeStore) FindByIntentRef(ctx context.Context, intentRef string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.PaymentIntentRef != nil && *b.PaymentIntentRef == intentRef {
			copied := *b
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeStore) FindByRenter(ctx context.Context, renterID uint, page, limit int) ([]models.Booking, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []models.Booking
	for _, b := range s.bookings {
		if b.RenterID == renterID {
			result = append(result, *b)
		}
	}
	return result, int64(len(result)), nil
}

func (s *fakeStore) HasOverlap(ctx context.Context, campsiteID uint, start, end time.Time, excludeBookingID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overlapLocked(campsiteID, start, end, excludeBookingID), nil
}

func (s *fakeStore) CancelIfActive(ctx context.Context, id uint, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return 0, nil
	}
	cancellable := false
	for _, status := range models.CancellableStatuses() {
		if b.Status == status {
			cancellable = true
		}
	}
	if !cancellable {
		return 0, nil
	}
	b.Status = constants.BookingStatusCancelled
	b.CancellationDate = &at
	return 1, nil
}

func (s *fakeStore) FindDueForCompletion(ctx context.Context, today time.Time) ([]uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []uint
	for _, b := range s.bookings {
		if b.Status == constants.BookingStatusConfirmed && b.EndDate.Before(today) {
			ids = append(ids, b.ID)
		}
	}
	return ids, nil
}

func (s *fakeStore) CompleteIfConfirmed(ctx context.Context, id uint, today time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failComplete[id]; ok {
		return 0, err
	}
	b, ok := s.bookings[id]
	if !ok || b.Status != constants.BookingStatusConfirmed || !b.EndDate.Before(today) {
		return 0, nil
	}
	b.Status = constants.BookingStatusCompleted
	return 1, nil
}

// ---- PaymentRepo ----

func (s *fakeStore) UpsertFromEvent(ctx context.Context, payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.payments[payment.ExternalIntentID]
	if !ok {
		payment.ID = s.nextSeq()
		payment.CreatedAt = time.Now()
		payment.UpdatedAt = payment.CreatedAt
		saved := *payment
		s.payments[payment.ExternalIntentID] = &saved
		return nil
	}
	existing.Status = payment.Status
	existing.Amount = payment.Amount
	existing.Currency = payment.Currency
	existing.UpdatedAt = time.Now()
	if existing.BookingID == nil {
		existing.BookingID = payment.BookingID
	}
	return nil
}

func (s *fakeStore) LinkBooking(ctx context.Context, intentRef string, bookingID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[intentRef]
	if ok && p.BookingID == nil {
		id := bookingID
		p.BookingID = &id
	}
	return nil
}

func (s *fakeStore) FindByBookingID(ctx context.Context, bookingID uint) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.BookingID != nil && *p.BookingID == bookingID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeStore) MarkRefunded(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.ID == id && p.Status == constants.PaymentStatusSucceeded {
			p.Status = constants.PaymentStatusRefunded
		}
	}
	return nil
}

// ---- CampsiteRepo ----

func (s *fakeStore) FindCampsiteByID(ctx context.Context, id uint) (*models.Campsite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campsites[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (s *fakeStore) ListWindows(ctx context.Context, campsiteID uint) ([]models.UnavailabilityWindow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []models.UnavailabilityWindow
	for _, w := range s.windows {
		if w.CampsiteID == campsiteID {
			result = append(result, *w)
		}
	}
	return result, nil
}

func (s *fakeStore) HasWindowOverlap(ctx context.Context, campsiteID uint, start, end time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.windowOverlapLocked(campsiteID, start, end), nil
}

func (s *fakeStore) CreateWindow(ctx context.Context, window *models.UnavailabilityWindow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	window.ID = s.nextSeq()
	saved := *window
	s.windows[window.ID] = &saved
	return nil
}

func (s *fakeStore) DeleteWindow(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, id)
	return nil
}

func (s *fakeStore) FindWindowByID(ctx context.Context, id uint) (*models.UnavailabilityWindow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.windows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *w
	return &copied, nil
}

// campsiteView tách riêng CampsiteRepo vì fakeStore.FindByID đã bị
// BookingRepo chiếm tên method
type campsiteView struct {
	store *fakeStore
}

func (v campsiteView) FindByID(ctx context.Context, id uint) (*models.Campsite, error) {
	return v.store.FindCampsiteByID(ctx, id)
}

func (v campsiteView) ListWindows(ctx context.Context, campsiteID uint) ([]models.UnavailabilityWindow, error) {
	return v.store.ListWindows(ctx, campsiteID)
}

func (v campsiteView) HasWindowOverlap(ctx context.Context, campsiteID uint, start, end time.Time) (bool, error) {
	return v.store.HasWindowOverlap(ctx, campsiteID, start, end)
}

func (v campsiteView) CreateWindow(ctx context.Context, window *models.UnavailabilityWindow) error {
	return v.store.CreateWindow(ctx, window)
}

func (v campsiteView) DeleteWindow(ctx context.Context, id uint) error {
	return v.store.DeleteWindow(ctx, id)
}

func (v campsiteView) FindWindowByID(ctx context.Context, id uint) (*models.UnavailabilityWindow, error) {
	return v.store.FindWindowByID(ctx, id)
}

// fakeGateway giả lập PaymentGateway, đếm số lần refund được gọi
type fakeGateway struct {
	mu          sync.Mutex
	refundErr   error
	refundCalls []string
	intent      *dto.PaymentIntent
	createErr   error
	event       *dto.GatewayEvent
	verifyErr   error
}

func (g *fakeGateway) CreateIntent(ctx context.Context, amount float64, currency string) (*dto.PaymentIntent, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	if g.intent != nil {
		return g.intent, nil
	}
	return &dto.PaymentIntent{IntentID: "pi_test", ClientSecret: "secret_test"}, nil
}

func (g *fakeGateway) VerifyWebhook(payload []byte, signature string) (*dto.GatewayEvent, error) {
	if g.verifyErr != nil {
		return nil, g.verifyErr
	}
	return g.event, nil
}

func (g *fakeGateway) Refund(ctx context.Context, intentID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.refundErr != nil {
		return g.refundErr
	}
	g.refundCalls = append(g.refundCalls, intentID)
	return nil
}

func (g *fakeGateway) refundCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.refundCalls)
}

var errBoom = errors.New("boom")
