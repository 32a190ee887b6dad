package attendance

import (
	"math"
	"time"
)

const dayKey = "2006-01-02"

// DayRate is one point of the per-day attendance series. HasData
// distinguishes "no records for this day" from a true 0% attendance; a day
// without data carries no meaningful Rate.
type DayRate struct {
	Date    time.Time `json:"date"`
	Rate    float64   `json:"rate"`
	HasData bool      `json:"hasData"`
}

// DailyRate computes, for each date in the inclusive range, the percentage
// of staffCount staff recorded present. The rate is clamped to [0, 100] even
// when upstream data implies more present records than staff, and rounded to
// one decimal place.
func DailyRate(staffCount int, records []Record, from, to time.Time) []DayRate {
	present := make(map[string]int)
	counted := make(map[string]bool)
	for _, rec := range records {
		key := rec.Date.Format(dayKey)
		counted[key] = true
		if rec.Present {
			present[key]++
		}
	}

	from = truncateDay(from)
	to = truncateDay(to)

	var series []DayRate
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayKey)
		if !counted[key] {
			series = append(series, DayRate{Date: day})
			continue
		}
		series = append(series, DayRate{
			Date:    day,
			Rate:    rate(present[key], staffCount),
			HasData: true,
		})
	}
	return series
}

func rate(present, staffCount int) float64 {
	if staffCount <= 0 {
		if present > 0 {
			return 100
		}
		return 0
	}
	value := float64(present) / float64(staffCount) * 100
	value = math.Min(100, math.Max(0, value))
	return math.Round(value*10) / 10
}

// FilterKnown drops records whose staff reference dangles, so aggregates
// only count staff that still exist.
func FilterKnown(records []Record, staffIDs map[string]bool) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if staffIDs[rec.StaffID] {
			out = append(out, rec)
		}
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
