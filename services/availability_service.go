package services

import (
	"context"
	"time"

	"gocamp/repository"
)

// AvailabilityService kiểm tra campsite có trống trong một khoảng ngày không,
// tính cả booking chưa hủy và unavailability window của chủ campsite.
type AvailabilityService struct {
	bookings  repository.BookingRepo
	campsites repository.CampsiteRepo
}

func NewAvailabilityService(bookings repository.BookingRepo, campsites repository.CampsiteRepo) *AvailabilityService {
	return &AvailabilityService{bookings: bookings, campsites: campsites}
}

// IsAvailable trả về true nếu [start, end) không trùng booking chưa hủy nào
// và không trùng window nào của campsite. excludeBookingID cho phép
// re-validate một booking với tất cả booking khác trừ chính nó.
// Campsite không tồn tại trả về repository.ErrNotFound thay vì "còn trống".
//
// Hàm này tự nó không chống race: BookingService lặp lại check này bên trong
// critical section theo campsite trước khi insert.
func (s *AvailabilityService) IsAvailable(ctx context.Context, campsiteID uint, start, end time.Time, excludeBookingID uint) (bool, error) {
	if _, err := s.campsites.FindByID(ctx, campsiteID); err != nil {
		return false, err
	}

	overlapped, err := s.bookings.HasOverlap(ctx, campsiteID, start, end, excludeBookingID)
	if err != nil {
		return false, err
	}
	if overlapped {
		return false, nil
	}

	blocked, err := s.campsites.HasWindowOverlap(ctx, campsiteID, start, end)
	if err != nil {
		return false, err
	}
	return !blocked, nil
}
