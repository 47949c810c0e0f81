package models

import "time"

// Campsite là địa điểm cắm trại cho thuê. Catalog bên ngoài sở hữu và
// cập nhật bảng này; core chỉ đọc chủ sở hữu và giá.
type Campsite struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	OwnerID      uint      `json:"ownerId" gorm:"index"`
	Name         string    `json:"name"`
	NightlyPrice float64   `json:"nightlyPrice"`
	CleaningFee  float64   `json:"cleaningFee"` // Phí dọn dẹp cộng một lần vào tổng giá
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// UnavailabilityWindow khoảng thời gian chủ campsite khóa lịch
type UnavailabilityWindow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CampsiteID uint      `json:"campsiteId" gorm:"index"`
	StartDate  time.Time `json:"startDate" gorm:"index"`
	EndDate    time.Time `json:"endDate" gorm:"index"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
