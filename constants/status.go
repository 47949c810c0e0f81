package constants

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Payment status
const (
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Kết quả refund trả về cho caller khi hủy booking
const (
	RefundOutcomeSucceeded     = "succeeded"
	RefundOutcomeNotApplicable = "not_applicable"
	RefundFailedPrefix         = "failed:"
)

// Loại event từ payment gateway
const (
	EventIntentSucceeded = "intent_succeeded"
	EventIntentFailed    = "intent_failed"
)
