package models

import "time"

// Payment bản ghi đối soát cho một intent của payment gateway.
// ExternalIntentID unique để replay event không tạo row trùng.
// BookingID có thể NULL khi event về trước lúc booking được tạo,
// và chỉ được gán đúng một lần.
type Payment struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	ExternalIntentID string    `json:"externalIntentId" gorm:"uniqueIndex"`
	BookingID        *uint     `json:"bookingId,omitempty" gorm:"index"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
