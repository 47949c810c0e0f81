package models

import "gocamp/constants"

// Máy trạng thái booking: pending -> confirmed -> completed,
// pending|confirmed -> cancelled. completed và cancelled là trạng thái cuối.
var bookingTransitions = map[string][]string{
	constants.BookingStatusPending:   {constants.BookingStatusConfirmed, constants.BookingStatusCancelled},
	constants.BookingStatusConfirmed: {constants.BookingStatusCompleted, constants.BookingStatusCancelled},
	constants.BookingStatusCompleted: {},
	constants.BookingStatusCancelled: {},
}

// CanTransition kiểm tra chuyển trạng thái from -> to có hợp lệ không
func CanTransition(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus trạng thái cuối, không hủy và không complete được nữa
func IsTerminalStatus(status string) bool {
	return status == constants.BookingStatusCompleted || status == constants.BookingStatusCancelled
}

// CancellableStatuses các trạng thái còn hủy được, dùng cho conditional update.
// Suy ra từ bảng chuyển trạng thái để không lệch với CanTransition.
func CancellableStatuses() []string {
	var statuses []string
	for status := range bookingTransitions {
		if CanTransition(status, constants.BookingStatusCancelled) {
			statuses = append(statuses, status)
		}
	}
	return statuses
}
