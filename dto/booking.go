package dto

import "time"

// CreateBookingRequest request tạo booking mới.
// TotalPrice client gửi lên chỉ để đối chiếu; server luôn tự tính giá.
type CreateBookingRequest struct {
	CampsiteID       uint    `json:"campsiteId" binding:"required"`
	FromDate         string  `json:"fromDate" binding:"required"`
	ToDate           string  `json:"toDate" binding:"required"`
	TotalPrice       float64 `json:"totalPrice,omitempty"`
	PaymentIntentRef string  `json:"paymentIntentRef,omitempty"`
	Email            string  `json:"email,omitempty"`
}

type CancelBookingRequest struct {
	ID uint `json:"id" binding:"required"`
}

type CancelBookingResponse struct {
	Status        string `json:"status"`
	RefundOutcome string `json:"refundOutcome"`
}

type BookingResponse struct {
	ID               uint       `json:"id"`
	CampsiteID       uint       `json:"campsiteId"`
	RenterID         uint       `json:"renterId"`
	FromDate         string     `json:"fromDate"`
	ToDate           string     `json:"toDate"`
	Nights           int        `json:"nights"`
	TotalPrice       float64    `json:"totalPrice"`
	Status           string     `json:"status"`
	PaymentIntentRef string     `json:"paymentIntentRef,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	CancellationDate *time.Time `json:"cancellationDate,omitempty"`
}

type SweepResponse struct {
	TransitionedCount int `json:"transitionedCount"`
}
