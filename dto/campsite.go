package dto

// CreateWindowRequest chủ campsite khóa lịch một khoảng ngày
type CreateWindowRequest struct {
	CampsiteID uint   `json:"campsiteId" binding:"required"`
	FromDate   string `json:"fromDate" binding:"required"`
	ToDate     string `json:"toDate" binding:"required"`
	Reason     string `json:"reason,omitempty"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}
