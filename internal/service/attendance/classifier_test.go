package attendance

import (
	"testing"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/attendance"
	"github.com/MohamedSalah50/hr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

var nineToFive = Schedule{CheckIn: "09:00", CheckOut: "17:00"}

func TestClassifyLateAndOvertime(t *testing.T) {
	got, err := Classify(nineToFive, DayContext{}, attendance.CreateAttendanceRequest{
		CheckIn:  strPtr("09:20"),
		CheckOut: strPtr("18:10"),
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPresent, got.Status)
	// 20 minutes late, 70 minutes over.
	assert.Equal(t, "0.33", got.LateHours.StringFixed(2))
	assert.Equal(t, "1.17", got.OvertimeHours.StringFixed(2))
}

func TestClassifyOnTime(t *testing.T) {
	got, err := Classify(nineToFive, DayContext{}, attendance.CreateAttendanceRequest{
		CheckIn:  strPtr("09:00"),
		CheckOut: strPtr("17:00"),
	})
	require.NoError(t, err)

	assert.True(t, got.LateHours.IsZero())
	assert.True(t, got.OvertimeHours.IsZero())
}

func TestClassifyEarlyArrivalNeverNegative(t *testing.T) {
	got, err := Classify(nineToFive, DayContext{}, attendance.CreateAttendanceRequest{
		CheckIn:  strPtr("08:30"),
		CheckOut: strPtr("16:00"),
	})
	require.NoError(t, err)

	assert.True(t, got.LateHours.IsZero(), "early arrival must not go negative")
	assert.True(t, got.OvertimeHours.IsZero(), "early departure must not go negative")
}

func TestClassifyMissingCheckOutMeansNoOvertime(t *testing.T) {
	got, err := Classify(nineToFive, DayContext{}, attendance.CreateAttendanceRequest{
		CheckIn: strPtr("09:30"),
	})
	require.NoError(t, err)

	assert.Equal(t, "0.50", got.LateHours.StringFixed(2))
	assert.True(t, got.OvertimeHours.IsZero())
	assert.Nil(t, got.CheckOut)
}

func TestClassifyWeekendOverridesPunches(t *testing.T) {
	got, err := Classify(nineToFive, DayContext{IsWeekend: true}, attendance.CreateAttendanceRequest{
		CheckIn:  strPtr("10:00"),
		CheckOut: strPtr("19:00"),
		Status:   strPtr(string(attendance.StatusPresent)),
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusHoliday, got.Status)
	assert.Nil(t, got.CheckIn)
	assert.Nil(t, got.CheckOut)
	assert.True(t, got.LateHours.IsZero())
	assert.True(t, got.OvertimeHours.IsZero())
}

func TestClassifyHolidayOverridesPunches(t *testing.T) {
	got, err := Classify(nineToFive, DayContext{IsHoliday: true}, attendance.CreateAttendanceRequest{
		CheckIn: strPtr("09:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusHoliday, got.Status)
	assert.True(t, got.LateHours.IsZero())
}

func TestClassifyNonPresentStatusDropsHours(t *testing.T) {
	for _, status := range []attendance.Status{attendance.StatusAbsent, attendance.StatusSickLeave} {
		got, err := Classify(nineToFive, DayContext{}, attendance.CreateAttendanceRequest{
			Status: strPtr(string(status)),
		})
		require.NoError(t, err)

		assert.Equal(t, status, got.Status)
		assert.Nil(t, got.CheckIn)
		assert.True(t, got.LateHours.IsZero())
		assert.True(t, got.OvertimeHours.IsZero())
	}
}

func TestClassifyPresentRequiresCheckIn(t *testing.T) {
	_, err := Classify(nineToFive, DayContext{}, attendance.CreateAttendanceRequest{})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "checkIn")
}

func TestHoursFromMinutesRounding(t *testing.T) {
	assert.Equal(t, "0.02", hoursFromMinutes(1).StringFixed(2))
	assert.Equal(t, "1.00", hoursFromMinutes(60).StringFixed(2))
	assert.True(t, hoursFromMinutes(-15).IsZero())
	assert.True(t, hoursFromMinutes(0).IsZero())
}
