package repository

import (
	"context"
	"errors"
	"time"

	"gocamp/models"
)

// Lỗi sentinel cho tầng repository; service map sang AppError tương ứng
var (
	ErrNotFound    = errors.New("record not found")
	ErrDateOverlap = errors.New("date range overlaps an existing booking or unavailability window")
)

// BookingRepo truy cập bảng bookings. CreateIfAvailable là critical section
// theo từng campsite: check trùng lịch và insert phải nằm trong cùng một
// transaction giữ lock trên row campsite.
type BookingRepo interface {
	CreateIfAvailable(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByIntentRef(ctx context.Context, intentRef string) (*models.Booking, error)
	FindByRenter(ctx context.Context, renterID uint, page, limit int) ([]models.Booking, int64, error)
	HasOverlap(ctx context.Context, campsiteID uint, start, end time.Time, excludeBookingID uint) (bool, error)
	CancelIfActive(ctx context.Context, id uint, at time.Time) (int64, error)
	FindDueForCompletion(ctx context.Context, today time.Time) ([]uint, error)
	CompleteIfConfirmed(ctx context.Context, id uint, today time.Time) (int64, error)
}

// PaymentRepo truy cập bảng payments. UpsertFromEvent phải là một thao tác
// storage nguyên tử (ON CONFLICT theo external_intent_id), không bao giờ
// read-then-write.
type PaymentRepo interface {
	UpsertFromEvent(ctx context.Context, payment *models.Payment) error
	LinkBooking(ctx context.Context, intentRef string, bookingID uint) error
	FindByBookingID(ctx context.Context, bookingID uint) (*models.Payment, error)
	MarkRefunded(ctx context.Context, id uint) error
}

// CampsiteRepo đọc catalog campsite và quản lý unavailability windows
type CampsiteRepo interface {
	FindByID(ctx context.Context, id uint) (*models.Campsite, error)
	ListWindows(ctx context.Context, campsiteID uint) ([]models.UnavailabilityWindow, error)
	HasWindowOverlap(ctx context.Context, campsiteID uint, start, end time.Time) (bool, error)
	CreateWindow(ctx context.Context, window *models.UnavailabilityWindow) error
	DeleteWindow(ctx context.Context, id uint) error
	FindWindowByID(ctx context.Context, id uint) (*models.UnavailabilityWindow, error)
}
