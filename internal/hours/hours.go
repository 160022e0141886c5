// Package hours decides whether a restaurant is currently open and
// renders its schedule as text. Both are pure functions of the schedule
// and a clock reading taken in the restaurant's timezone.
package hours

import (
	"fmt"
	"strings"
	"time"

	"github.com/phoneline/voicemenu/internal/models"
)

// OrderStatusPaused is the dashboard override that forces the restaurant
// closed regardless of schedule.
const OrderStatusPaused = "paused"

const (
	hoursUnavailable = "Opening hours not available"
	hoursError       = "Error retrieving opening hours"
)

var daysOfWeek = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// IsOpen reports whether the restaurant is open at now. Periods listing
// the previous weekday are also checked so an overnight slot that started
// yesterday still counts. Any malformed time fails closed.
func IsOpen(restaurant *models.Restaurant, now time.Time) bool {
	if restaurant == nil {
		return false
	}
	if restaurant.RestaurantOrderStatus == OrderStatusPaused {
		return false
	}

	currentDay := now.Format("Mon")
	previousDay := now.AddDate(0, 0, -1).Format("Mon")
	clock := now.Hour()*60 + now.Minute()

	for _, period := range restaurant.OpeningHours {
		if !containsDay(period.Days, currentDay) && !containsDay(period.Days, previousDay) {
			continue
		}
		for _, slot := range period.TimeRanges() {
			start, err := parseClock(slot.StartTime)
			if err != nil {
				return false
			}
			end, err := parseClock(slot.EndTime)
			if err != nil {
				return false
			}

			if end < start {
				// Overnight slot, crosses midnight.
				if clock >= start || clock < end {
					return true
				}
			} else if start <= clock && clock < end {
				return true
			}
		}
	}

	return false
}

// Formatted renders the whole schedule, one line per period, e.g.
// "Mon-Fri: 11:00 AM - 09:00 PM". Returns a fixed fallback when the
// schedule is empty and a fixed error string when it cannot be rendered.
func Formatted(periods []models.OpeningPeriod) string {
	lines, err := formatLines(periods)
	if err != nil {
		return hoursError
	}
	if len(lines) == 0 {
		return hoursUnavailable
	}
	return strings.Join(lines, "\n")
}

func formatLines(periods []models.OpeningPeriod) ([]string, error) {
	var lines []string
	for _, period := range periods {
		if len(period.Days) == 0 {
			continue
		}

		label, err := daysLabel(period.Days)
		if err != nil {
			return nil, err
		}

		ranges := period.TimeRanges()
		if len(ranges) == 0 {
			continue
		}

		formatted := make([]string, 0, len(ranges))
		for _, slot := range ranges {
			formatted = append(formatted, formatRange(slot))
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, strings.Join(formatted, ", ")))
	}
	return lines, nil
}

// daysLabel renders more than two contiguous days as a "First-Last"
// range; anything else is a comma join. A Sun→Mon step counts as
// contiguous. Day names are only validated on the range path, so short
// lists with unknown names still render verbatim.
func daysLabel(days []string) (string, error) {
	if len(days) <= 2 {
		return strings.Join(days, ", "), nil
	}

	consecutive := true
	for i := 1; i < len(days); i++ {
		prev, err := dayIndex(days[i-1])
		if err != nil {
			return "", err
		}
		next, err := dayIndex(days[i])
		if err != nil {
			return "", err
		}
		if ((next-prev)%7+7)%7 != 1 {
			consecutive = false
			break
		}
	}

	if consecutive {
		return fmt.Sprintf("%s-%s", days[0], days[len(days)-1]), nil
	}
	return strings.Join(days, ", "), nil
}

// formatRange turns 24-hour bounds into "hh:mm AM - hh:mm PM", tagging
// the end with " (next day)" when its clock time precedes the start.
// Unparseable bounds fall back to the raw strings.
func formatRange(slot models.TimeSlot) string {
	start, startErr := time.Parse("15:04", slot.StartTime)
	end, endErr := time.Parse("15:04", slot.EndTime)
	if startErr != nil || endErr != nil {
		return fmt.Sprintf("%s - %s", slot.StartTime, slot.EndTime)
	}

	endLabel := end.Format("03:04 PM")
	if end.Before(start) {
		endLabel += " (next day)"
	}
	return fmt.Sprintf("%s - %s", start.Format("03:04 PM"), endLabel)
}

func parseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func dayIndex(day string) (int, error) {
	for i, name := range daysOfWeek {
		if name == day {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown day name %q", day)
}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
