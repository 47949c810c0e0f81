package builders

import (
	"time"

	"gocamp/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithCampsite thêm campsite được đặt
func (b *BookingBuilder) WithCampsite(campsiteID uint) *BookingBuilder {
	b.booking.CampsiteID = campsiteID
	return b
}

// WithRenter thêm người thuê
func (b *BookingBuilder) WithRenter(renterID uint) *BookingBuilder {
	b.booking.RenterID = renterID
	return b
}

// WithDates thêm khoảng ngày [start, end)
func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.booking.StartDate = start
	b.booking.EndDate = end
	return b
}

// WithNights thêm số đêm
func (b *BookingBuilder) WithNights(nights int) *BookingBuilder {
	b.booking.Nights = nights
	return b
}

// WithTotalPrice thêm tổng giá đã chốt
func (b *BookingBuilder) WithTotalPrice(totalPrice float64) *BookingBuilder {
	b.booking.TotalPrice = totalPrice
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithPaymentIntentRef thêm intent reference nếu đã biết lúc tạo
func (b *BookingBuilder) WithPaymentIntentRef(intentRef string) *BookingBuilder {
	if intentRef != "" {
		b.booking.PaymentIntentRef = &intentRef
	}
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
