package hours

import (
	"testing"
	"time"

	"github.com/phoneline/voicemenu/internal/models"
	"github.com/stretchr/testify/assert"
)

// 2026-08-26 is a Wednesday.
func wednesdayAt(hour, minute int) time.Time {
	return time.Date(2026, 8, 26, hour, minute, 0, 0, time.UTC)
}

func scheduled(periods ...models.OpeningPeriod) *models.Restaurant {
	return &models.Restaurant{OpeningHours: periods}
}

func TestIsOpenPausedOverridesSchedule(t *testing.T) {
	restaurant := scheduled(models.OpeningPeriod{
		Days:  []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Slots: []models.TimeSlot{{StartTime: "00:00", EndTime: "23:59"}},
	})
	restaurant.RestaurantOrderStatus = OrderStatusPaused

	assert.False(t, IsOpen(restaurant, wednesdayAt(12, 0)))
}

func TestIsOpenSameDaySlot(t *testing.T) {
	restaurant := scheduled(models.OpeningPeriod{
		Days:  []string{"Wed"},
		Slots: []models.TimeSlot{{StartTime: "11:00", EndTime: "15:00"}},
	})

	assert.True(t, IsOpen(restaurant, wednesdayAt(11, 0)))
	assert.True(t, IsOpen(restaurant, wednesdayAt(14, 59)))
	assert.False(t, IsOpen(restaurant, wednesdayAt(15, 0))) // end is exclusive
	assert.False(t, IsOpen(restaurant, wednesdayAt(10, 59)))
}

func TestIsOpenOvernightSlot(t *testing.T) {
	restaurant := scheduled(models.OpeningPeriod{
		Days:  []string{"Wed"},
		Slots: []models.TimeSlot{{StartTime: "22:00", EndTime: "02:00"}},
	})

	assert.True(t, IsOpen(restaurant, wednesdayAt(23, 30)))
	assert.False(t, IsOpen(restaurant, wednesdayAt(10, 0)))

	// 01:00 Thursday is still covered by Wednesday's overnight slot:
	// the previous day's periods are checked too.
	thursday := wednesdayAt(1, 0).AddDate(0, 0, 1)
	assert.True(t, IsOpen(restaurant, thursday))
}

func TestIsOpenOldFormatPeriod(t *testing.T) {
	restaurant := scheduled(models.OpeningPeriod{
		Days:      []string{"Wed"},
		StartTime: "17:00",
		EndTime:   "01:00",
	})

	assert.True(t, IsOpen(restaurant, wednesdayAt(18, 0)))
	assert.False(t, IsOpen(restaurant, wednesdayAt(12, 0)))
}

func TestIsOpenIgnoresOtherDays(t *testing.T) {
	restaurant := scheduled(models.OpeningPeriod{
		Days:  []string{"Sat", "Sun"},
		Slots: []models.TimeSlot{{StartTime: "09:00", EndTime: "17:00"}},
	})

	assert.False(t, IsOpen(restaurant, wednesdayAt(12, 0)))
}

func TestIsOpenFailsClosed(t *testing.T) {
	assert.False(t, IsOpen(nil, wednesdayAt(12, 0)))

	assert.False(t, IsOpen(scheduled(), wednesdayAt(12, 0)))

	malformed := scheduled(models.OpeningPeriod{
		Days:  []string{"Wed"},
		Slots: []models.TimeSlot{{StartTime: "garbage", EndTime: "15:00"}},
	})
	assert.False(t, IsOpen(malformed, wednesdayAt(12, 0)))
}

func TestIsOpenSkipsSlotsMissingBounds(t *testing.T) {
	restaurant := scheduled(models.OpeningPeriod{
		Days: []string{"Wed"},
		Slots: []models.TimeSlot{
			{StartTime: "11:00"},
			{StartTime: "17:00", EndTime: "22:00"},
		},
	})

	assert.False(t, IsOpen(restaurant, wednesdayAt(12, 0)))
	assert.True(t, IsOpen(restaurant, wednesdayAt(18, 0)))
}

func TestFormattedContiguousDayRange(t *testing.T) {
	got := Formatted([]models.OpeningPeriod{{
		Days:  []string{"Mon", "Tue", "Wed"},
		Slots: []models.TimeSlot{{StartTime: "11:00", EndTime: "21:00"}},
	}})
	assert.Equal(t, "Mon-Wed: 11:00 AM - 09:00 PM", got)
}

func TestFormattedNonContiguousDays(t *testing.T) {
	got := Formatted([]models.OpeningPeriod{{
		Days:  []string{"Mon", "Wed", "Fri"},
		Slots: []models.TimeSlot{{StartTime: "11:00", EndTime: "21:00"}},
	}})
	assert.Equal(t, "Mon, Wed, Fri: 11:00 AM - 09:00 PM", got)
}

func TestFormattedWrapAroundRange(t *testing.T) {
	got := Formatted([]models.OpeningPeriod{{
		Days:  []string{"Sat", "Sun", "Mon"},
		Slots: []models.TimeSlot{{StartTime: "09:00", EndTime: "14:00"}},
	}})
	assert.Equal(t, "Sat-Mon: 09:00 AM - 02:00 PM", got)
}

func TestFormattedTwoDaysNeverRanged(t *testing.T) {
	got := Formatted([]models.OpeningPeriod{{
		Days:  []string{"Sat", "Sun"},
		Slots: []models.TimeSlot{{StartTime: "09:00", EndTime: "14:00"}},
	}})
	assert.Equal(t, "Sat, Sun: 09:00 AM - 02:00 PM", got)
}

func TestFormattedOvernightGetsNextDayLabel(t *testing.T) {
	got := Formatted([]models.OpeningPeriod{{
		Days:      []string{"Fri", "Sat"},
		StartTime: "22:00",
		EndTime:   "02:00",
	}})
	assert.Equal(t, "Fri, Sat: 10:00 PM - 02:00 AM (next day)", got)
}

func TestFormattedMultipleSlotsJoined(t *testing.T) {
	got := Formatted([]models.OpeningPeriod{{
		Days: []string{"Wed"},
		Slots: []models.TimeSlot{
			{StartTime: "11:00", EndTime: "15:00"},
			{StartTime: "17:00", EndTime: "22:00"},
		},
	}})
	assert.Equal(t, "Wed: 11:00 AM - 03:00 PM, 05:00 PM - 10:00 PM", got)
}

func TestFormattedMultiplePeriodsOnSeparateLines(t *testing.T) {
	got := Formatted([]models.OpeningPeriod{
		{
			Days:  []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
			Slots: []models.TimeSlot{{StartTime: "11:00", EndTime: "21:00"}},
		},
		{
			Days:      []string{"Sat", "Sun"},
			StartTime: "12:00",
			EndTime:   "20:00",
		},
	})
	assert.Equal(t, "Mon-Fri: 11:00 AM - 09:00 PM\nSat, Sun: 12:00 PM - 08:00 PM", got)
}

func TestFormattedUnparseableTimesFallBackToRawStrings(t *testing.T) {
	got := Formatted([]models.OpeningPeriod{{
		Days:  []string{"Wed"},
		Slots: []models.TimeSlot{{StartTime: "eleven", EndTime: "15:00"}},
	}})
	assert.Equal(t, "Wed: eleven - 15:00", got)
}

func TestFormattedEmptySchedule(t *testing.T) {
	assert.Equal(t, "Opening hours not available", Formatted(nil))
	assert.Equal(t, "Opening hours not available", Formatted([]models.OpeningPeriod{}))

	// Periods with no days or no usable slots produce no lines.
	assert.Equal(t, "Opening hours not available", Formatted([]models.OpeningPeriod{
		{Slots: []models.TimeSlot{{StartTime: "09:00", EndTime: "17:00"}}},
		{Days: []string{"Mon"}, Slots: []models.TimeSlot{}},
	}))
}

func TestFormattedUnknownDayNameIsAnError(t *testing.T) {
	got := Formatted([]models.OpeningPeriod{{
		Days:  []string{"Mon", "Funday", "Wed"},
		Slots: []models.TimeSlot{{StartTime: "09:00", EndTime: "17:00"}},
	}})
	assert.Equal(t, "Error retrieving opening hours", got)
}
