package booking

import (
	"fmt"
	"time"

	"carebridge/models"
)

// fullyBookedTimes is the set of hourly slots currently at capacity.
// With no shared scheduler behind the mock catalog this is a fixed set.
var fullyBookedTimes = []string{"11:00", "15:00"}

// BuildSlotGrid returns the selectable visit schedule: the next seven days
// crossed with hourly slots from 09:00 to 20:00.
func BuildSlotGrid(now time.Time) models.SlotGrid {
	dates := make([]models.DateOption, 0, 7)
	for i := 0; i < 7; i++ {
		d := now.AddDate(0, 0, i)
		var label string
		switch i {
		case 0:
			label = "今日"
		case 1:
			label = "明日"
		default:
			label = fmt.Sprintf("%d/%d", int(d.Month()), d.Day())
		}
		dates = append(dates, models.DateOption{
			Label: label,
			Date:  d.Format("2006-01-02"),
		})
	}

	times := make([]string, 0, 12)
	for h := 9; h <= 20; h++ {
		times = append(times, fmt.Sprintf("%02d:00", h))
	}

	return models.SlotGrid{
		Dates:       dates,
		Times:       times,
		FullyBooked: append([]string(nil), fullyBookedTimes...),
	}
}
