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

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) PaymentRepo {
	return &paymentRepo{db: db}
}

// UpsertFromEvent INSERT ... ON CONFLICT (external_intent_id) DO UPDATE.
// Status/amount/currency ghi đè theo event; booking_id chỉ được gán khi
// đang NULL, không bao giờ ghi đè giá trị đã có.
func (r *paymentRepo) UpsertFromEvent(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_intent_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":     payment.Status,
			"amount":     payment.Amount,
			"currency":   payment.Currency,
			"updated_at": time.Now(),
			"booking_id": gorm.Expr("COALESCE(payments.booking_id, excluded.booking_id)"),
		}),
	}).Create(payment).Error
}

// LinkBooking gắn booking cho payment đã về trước; điều kiện
// booking_id IS NULL giữ bất biến "gán đúng một lần"
func (r *paymentRepo) LinkBooking(ctx context.Context, intentRef string, bookingID uint) error {
	return r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("external_intent_id = ? AND booking_id IS NULL", intentRef).
		Update("booking_id", bookingID).Error
}

func (r *paymentRepo) FindByBookingID(ctx context.Context, bookingID uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepo) MarkRefunded(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, constants.PaymentStatusSucceeded).
		Update("status", constants.PaymentStatusRefunded).Error
}
