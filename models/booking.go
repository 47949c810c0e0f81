package models

import "time"

// Booking một lượt đặt campsite theo khoảng ngày [StartDate, EndDate).
// Ngày checkout trùng ngày checkin của booking khác không tính là trùng lịch.
type Booking struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	CampsiteID       uint       `json:"campsiteId" gorm:"index"`
	Campsite         Campsite   `json:"campsite,omitempty" gorm:"foreignKey:CampsiteID"`
	RenterID         uint       `json:"renterId" gorm:"index"`
	StartDate        time.Time  `json:"startDate" gorm:"index"`
	EndDate          time.Time  `json:"endDate" gorm:"index"`
	Status           string     `json:"status" gorm:"index"`
	Nights           int        `json:"nights"`
	TotalPrice       float64    `json:"totalPrice"` // Chốt lúc tạo, không tính lại
	PaymentIntentRef *string    `json:"paymentIntentRef,omitempty" gorm:"index"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	CancellationDate *time.Time `json:"cancellationDate,omitempty"`
}
