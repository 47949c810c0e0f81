package validator

import (
	"testing"
	"time"

	errs "gocamp/errors"
	"gocamp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	return BeginningOfDay(time.Now()).AddDate(0, 0, offset)
}

func TestParseBookingDate(t *testing.T) {
	parsed, err := ParseBookingDate("15/06/2027")
	require.NoError(t, err)
	assert.Equal(t, 2027, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 15, parsed.Day())

	_, err = ParseBookingDate("2027-06-15")
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidFormat))

	_, err = ParseBookingDate("31/02/2027")
	assert.Error(t, err)
}

func TestBeginningOfDay(t *testing.T) {
	ts := time.Date(2027, time.March, 9, 17, 45, 30, 0, time.UTC)
	got := BeginningOfDay(ts)
	assert.Equal(t, time.Date(2027, time.March, 9, 0, 0, 0, 0, time.UTC), got)

	// Múi giờ khác được quy về ngày UTC
	loc := time.FixedZone("UTC+7", 7*3600)
	late := time.Date(2027, time.March, 10, 2, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2027, time.March, 9, 0, 0, 0, 0, time.UTC), BeginningOfDay(late))
}

func TestValidateDateRange(t *testing.T) {
	assert.NoError(t, ValidateDateRange(day(5), day(7)))

	err := ValidateDateRange(day(7), day(5))
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidDateRange))

	err = ValidateDateRange(day(5), day(5))
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidDateRange))

	err = ValidateDateRange(day(-1), day(2))
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidDateRange))

	// Hôm nay vẫn đặt được
	assert.NoError(t, ValidateDateRange(day(0), day(1)))
}

func TestParseDateRange(t *testing.T) {
	from := day(10).Format(BookingDateLayout)
	to := day(12).Format(BookingDateLayout)

	start, end, err := ParseDateRange(from, to)
	require.NoError(t, err)
	assert.True(t, start.Before(end))
	assert.Equal(t, 48*time.Hour, end.Sub(start))

	_, _, err = ParseDateRange("xx/yy/zzzz", to)
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidFormat))

	_, _, err = ParseDateRange(to, from)
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidDateRange))
}

func TestValidateWindow(t *testing.T) {
	assert.NoError(t, ValidateWindow(&models.UnavailabilityWindow{
		CampsiteID: 1,
		StartDate:  day(1),
		EndDate:    day(3),
	}))

	err := ValidateWindow(&models.UnavailabilityWindow{StartDate: day(1), EndDate: day(3)})
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeRequiredField))

	err = ValidateWindow(&models.UnavailabilityWindow{CampsiteID: 1, StartDate: day(3), EndDate: day(3)})
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.ErrCodeInvalidDateRange))
}
