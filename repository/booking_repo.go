package repository

import (
	"context"
	"errors"
	"time"

	"gocamp/constants"
	"gocamp/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookingRepo struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) BookingRepo {
	return &bookingRepo{db: db}
}

// bookingOverlapExists hai khoảng [s1,e1) và [s2,e2) trùng nhau
// khi và chỉ khi s1 < e2 AND s2 < e1
func bookingOverlapExists(tx *gorm.DB, campsiteID uint, start, end time.Time, excludeBookingID uint) (bool, error) {
	q := tx.Model(&models.Booking{}).
		Where("campsite_id = ? AND status <> ?", campsiteID, constants.BookingStatusCancelled).
		Where("start_date < ? AND end_date > ?", end, start)
	if excludeBookingID != 0 {
		q = q.Where("id <> ?", excludeBookingID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func windowOverlapExists(tx *gorm.DB, campsiteID uint, start, end time.Time) (bool, error) {
	var count int64
	err := tx.Model(&models.UnavailabilityWindow{}).
		Where("campsite_id = ?", campsiteID).
		Where("start_date < ? AND end_date > ?", end, start).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateIfAvailable khóa row campsite (SELECT ... FOR UPDATE) để serialize
// check-and-insert trên cùng một campsite; các campsite khác nhau không
// chặn nhau. Trả về ErrDateOverlap nếu khoảng ngày đã bị chiếm.
func (r *bookingRepo) CreateIfAvailable(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var campsite models.Campsite
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&campsite, booking.CampsiteID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		overlapped, err := bookingOverlapExists(tx, booking.CampsiteID, booking.StartDate, booking.EndDate, 0)
		if err != nil {
			return err
		}
		if overlapped {
			return ErrDateOverlap
		}

		blocked, err := windowOverlapExists(tx, booking.CampsiteID, booking.StartDate, booking.EndDate)
		if err != nil {
			return err
		}
		if blocked {
			return ErrDateOverlap
		}

		return tx.Create(booking).Error
	})
}

func (r *bookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepo) FindByIntentRef(ctx context.Context, intentRef string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("payment_intent_ref = ?", intentRef).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepo) FindByRenter(ctx context.Context, renterID uint, page, limit int) ([]models.Booking, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("renter_id = ?", renterID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Campsite").
		Where("renter_id = ?", renterID).
		Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepo) HasOverlap(ctx context.Context, campsiteID uint, start, end time.Time, excludeBookingID uint) (bool, error) {
	return bookingOverlapExists(r.db.WithContext(ctx), campsiteID, start, end, excludeBookingID)
}

// CancelIfActive conditional update: chỉ hủy khi booking còn ở trạng thái
// hủy được. Trả về số row bị ảnh hưởng; 0 nghĩa là một actor khác
// (sweeper hoặc một cancel khác) đã chốt trạng thái trước.
func (r *bookingRepo) CancelIfActive(ctx context.Context, id uint, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ? AND status IN ?", id, models.CancellableStatuses()).
		Updates(map[string]interface{}{
			"status":            constants.BookingStatusCancelled,
			"cancellation_date": at,
			"updated_at":        at,
		})
	return result.RowsAffected, result.Error
}

func (r *bookingRepo) FindDueForCompletion(ctx context.Context, today time.Time) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("status = ? AND end_date < ?", constants.BookingStatusConfirmed, today).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// CompleteIfConfirmed guard theo status để cancel chạy song song thắng
// một cách êm thấm: khi đó RowsAffected = 0 và sweeper bỏ qua row này.
func (r *bookingRepo) CompleteIfConfirmed(ctx context.Context, id uint, today time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ? AND status = ? AND end_date < ?", id, constants.BookingStatusConfirmed, today).
		Update("status", constants.BookingStatusCompleted)
	return result.RowsAffected, result.Error
}
