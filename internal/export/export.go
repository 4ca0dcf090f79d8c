// Package export serializes plan artifacts into the CSV layouts the
// presentation side consumes. Column order and the literal time formats
// (hours as H:00, lunch times as zero-padded HH:MM) are part of the contract.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
)

// ClockHour renders an hour-of-day index as H:00 (no zero padding).
func ClockHour(h int) string {
	return fmt.Sprintf("%d:00", h)
}

// ClockMinutes renders minutes since midnight as zero-padded HH:MM.
func ClockMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// WriteCoverageCSV writes the per-hour coverage table: one row per hour with
// the requirement, the scheduled coverage and the derived short/excess.
func WriteCoverageCSV(w io.Writer, required [24]int, result *domain.PlanResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"hour", "required", "coverage", "short", "excess"}); err != nil {
		return err
	}
	for h := 0; h < 24; h++ {
		row := []string{
			ClockHour(h),
			strconv.Itoa(required[h]),
			strconv.Itoa(result.Coverage[h]),
			strconv.Itoa(result.Shortage[h]),
			strconv.Itoa(result.Excess[h]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteShiftsCSV writes the merged shift windows, full-time block first.
func WriteShiftsCSV(w io.Writer, result *domain.PlanResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"type", "start", "end", "count"}); err != nil {
		return err
	}
	for _, windows := range [][]domain.ShiftWindow{result.ShiftsFT, result.ShiftsPT} {
		for _, win := range windows {
			row := []string{
				string(win.Type),
				ClockHour(win.Start),
				ClockHour(win.End),
				strconv.Itoa(win.Count),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteHiresCSV writes the hire recommendation scenarios as scenario/value
// rows. A nil recommendation (no shortage) yields just the header.
func WriteHiresCSV(w io.Writer, rec *domain.HireRecommendation) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"scenario", "value"}); err != nil {
		return err
	}
	if rec != nil {
		rows := [][]string{
			{"total_short_hours", strconv.Itoa(rec.TotalShort)},
			{"peak_short", strconv.Itoa(rec.PeakShort)},
			{"min_ft_8h", strconv.Itoa(rec.MinFT8)},
			{"min_pt_current", strconv.Itoa(rec.MinPTCurrent)},
			{"min_pt_4h", strconv.Itoa(rec.MinPT4)},
			{"min_pt_6h", strconv.Itoa(rec.MinPT6)},
			{"mixed_ft", strconv.Itoa(rec.Mixed.FT)},
			{"mixed_pt", strconv.Itoa(rec.Mixed.PT)},
		}
		for _, row := range rows {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteRosterCSV writes one row per employee with the lunch window in
// zero-padded HH:MM.
func WriteRosterCSV(w io.Writer, roster []domain.RosterEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"employee", "type", "start", "end", "lunch_start", "lunch_end", "hours"}); err != nil {
		return err
	}
	for _, entry := range roster {
		row := []string{
			strconv.Itoa(entry.EmployeeID),
			string(entry.Type),
			ClockHour(entry.Start),
			ClockHour(entry.End),
			ClockMinutes(entry.LunchStart),
			ClockMinutes(entry.LunchEnd),
			strconv.Itoa(entry.Hours),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
