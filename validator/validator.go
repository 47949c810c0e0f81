package validator

import (
	"time"

	"gocamp/errors"
	"gocamp/models"
)

// BookingDateLayout định dạng ngày nhận từ client
const BookingDateLayout = "02/01/2006"

// ParseBookingDate parse chuỗi ngày dd/MM/yyyy thành timestamp đầu ngày UTC
func ParseBookingDate(dateStr string) (time.Time, error) {
	parsedDate, err := time.Parse(BookingDateLayout, dateStr)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày không hợp lệ", err)
	}
	return parsedDate, nil
}

// BeginningOfDay cắt giờ phút giây, giữ lại ngày theo UTC
func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDateRange parse và validate một khoảng ngày đặt chỗ:
// start < end và start không được ở quá khứ
func ParseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	start, err := ParseBookingDate(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseBookingDate(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if err := ValidateDateRange(start, end); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// ValidateDateRange kiểm tra start < end và start >= hôm nay
func ValidateDateRange(start, end time.Time) error {
	if !start.Before(end) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả chỗ phải sau ngày nhận chỗ", nil)
	}
	if start.Before(BeginningOfDay(time.Now())) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày nhận chỗ không được nhỏ hơn ngày hiện tại", nil)
	}
	return nil
}

// ValidateWindow kiểm tra unavailability window trước khi lưu
func ValidateWindow(window *models.UnavailabilityWindow) error {
	if window.CampsiteID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID campsite không được để trống", nil)
	}
	if !window.StartDate.Before(window.EndDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}
	return nil
}
