// Package timesheet implements the time-accounting engine: pure functions that
// turn raw "HH:MM" time entries into payroll-relevant hour figures, daily
// summaries and monthly totals. Nothing here performs I/O or mutates its
// inputs, so every function is safe to call concurrently.
package timesheet

import (
	"math"
	"strconv"
	"strings"

	"ges_rdo/internal/domain/entities"
)

// ActivityTravel is the literal tag whose hours are tracked separately but
// still count toward the daily regular/overtime threshold.
const ActivityTravel = "Deslocamento"

const minutesPerDay = 24 * 60

// Night window on the entry's own elapsed timeline: [22:00, 24:00) and
// [00:00, 06:00). After midnight normalization an end minute may exceed 1440.
const (
	nightStartEvening = 22 * 60
	nightEndEvening   = 24 * 60
	nightStartMorning = 0
	nightEndMorning   = 6 * 60
)

// minutesOfDay parses a zero-padded "HH:MM" wall-clock string into minutes
// since midnight. Malformed input (empty, missing colon, non-numeric parts,
// out-of-range fields) reports ok=false; callers treat it as zero contribution
// rather than an error, so one bad entry never fails a whole month.
func minutesOfDay(s string) (int, bool) {
	h, m, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

// normalizedInterval converts an entry's times to a [start, end) minute
// interval where end <= start means the shift crosses midnight and gains 24h.
// Because both times are wall-clock, a normalized entry never spans more than
// 24 hours.
func normalizedInterval(start, end string) (int, int, bool) {
	startMin, ok := minutesOfDay(start)
	if !ok {
		return 0, 0, false
	}
	endMin, ok := minutesOfDay(end)
	if !ok {
		return 0, 0, false
	}
	if endMin <= startMin {
		endMin += minutesPerDay
	}
	return startMin, endMin, true
}

// Duration returns the worked hours of a single entry. Missing or malformed
// times yield 0.
func Duration(e entities.TimeEntry) float64 {
	startMin, endMin, ok := normalizedInterval(e.StartTime, e.EndTime)
	if !ok {
		return 0
	}
	return float64(endMin-startMin) / 60
}

// NightOverlap returns the hours of an entry that fall inside the night window
// (22:00–06:00), rounded to two decimals so downstream monthly sums do not
// drift by fractions of a minute. An overnight shift is credited for both the
// evening and the early-morning portion.
func NightOverlap(e entities.TimeEntry) float64 {
	startMin, endMin, ok := normalizedInterval(e.StartTime, e.EndTime)
	if !ok {
		return 0
	}

	overlap := intervalOverlap(startMin, endMin, nightStartEvening, nightEndEvening)
	overlap += intervalOverlap(startMin, endMin, nightStartMorning, nightEndMorning)
	// On a midnight-crossing shift the 00:00–06:00 window lives past minute
	// 1440 of the normalized timeline. A 20:00–08:00 shift must be credited
	// both the 22–24h and the 00–06h portions.
	overlap += intervalOverlap(startMin, endMin, nightStartMorning+minutesPerDay, nightEndMorning+minutesPerDay)

	return round2(float64(overlap) / 60)
}

func intervalOverlap(start1, end1, start2, end2 int) int {
	lo := max(start1, start2)
	hi := min(end1, end2)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// IsTravel reports whether an entry's hours accumulate into the travel bucket.
func IsTravel(e entities.TimeEntry) bool {
	return e.Activity == ActivityTravel
}

// SplitRegularOvertime splits a day's total worked hours against the project's
// daily threshold. The rule applies to the sum of all entries for the day, not
// per entry; travel counts toward the threshold like any other activity. No
// rounding happens here — presentation layers round.
func SplitRegularOvertime(totalHours, normalHoursPerDay float64) (regular, overtime float64) {
	regular = math.Min(totalHours, normalHoursPerDay)
	overtime = math.Max(0, totalHours-normalHoursPerDay)
	return regular, overtime
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
