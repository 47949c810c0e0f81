package dto

// CreateIntentRequest tạo payment intent trước khi đặt booking
type CreateIntentRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency" binding:"required"`
}

// PaymentIntent handle ủy quyền thanh toán do gateway cấp
type PaymentIntent struct {
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
}

// GatewayEvent event webhook đã xác thực chữ ký từ payment gateway
type GatewayEvent struct {
	Type     string  `json:"type"`
	IntentID string  `json:"intent_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Reason   string  `json:"reason,omitempty"`
}
