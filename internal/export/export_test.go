package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/export"
)

func TestClockFormats(t *testing.T) {
	assert.Equal(t, "0:00", export.ClockHour(0))
	assert.Equal(t, "9:00", export.ClockHour(9))
	assert.Equal(t, "17:00", export.ClockHour(17))

	assert.Equal(t, "00:00", export.ClockMinutes(0))
	assert.Equal(t, "09:30", export.ClockMinutes(570))
	assert.Equal(t, "13:00", export.ClockMinutes(780))
}

func TestWriteCoverageCSV(t *testing.T) {
	var required [24]int
	required[8] = 5

	result := &domain.PlanResult{}
	for h := 1; h < 9; h++ {
		result.Coverage[h] = 5
	}
	result.Excess[1] = 5
	result.MaxConcurrent = 5

	buf := &bytes.Buffer{}
	require.NoError(t, export.WriteCoverageCSV(buf, required, result))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 25)
	assert.Equal(t, "hour,required,coverage,short,excess", lines[0])
	assert.Equal(t, "0:00,0,0,0,0", lines[1])
	assert.Equal(t, "1:00,0,5,0,5", lines[2])
	assert.Equal(t, "8:00,5,5,0,0", lines[9])
	assert.Equal(t, "23:00,0,0,0,0", lines[24])
}

func TestWriteShiftsCSV(t *testing.T) {
	result := &domain.PlanResult{
		ShiftsFT: []domain.ShiftWindow{{Type: domain.ShiftFullTime, Start: 1, End: 9, Count: 5}},
		ShiftsPT: []domain.ShiftWindow{{Type: domain.ShiftPartTime, Start: 10, End: 14, Count: 2}},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, export.WriteShiftsCSV(buf, result))

	expected := "type,start,end,count\n" +
		"FT,1:00,9:00,5\n" +
		"PT,10:00,14:00,2\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteHiresCSV(t *testing.T) {
	rec := &domain.HireRecommendation{
		TotalShort:   3,
		PeakShort:    3,
		MinFT8:       3,
		MinPTCurrent: 1,
		MinPT4:       1,
		MinPT6:       1,
		Mixed:        domain.MixedHire{FT: 3, PT: 0, LengthHours: 4},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, export.WriteHiresCSV(buf, rec))

	expected := "scenario,value\n" +
		"total_short_hours,3\n" +
		"peak_short,3\n" +
		"min_ft_8h,3\n" +
		"min_pt_current,1\n" +
		"min_pt_4h,1\n" +
		"min_pt_6h,1\n" +
		"mixed_ft,3\n" +
		"mixed_pt,0\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteHiresCSVNoShortage(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, export.WriteHiresCSV(buf, nil))

	assert.Equal(t, "scenario,value\n", buf.String())
}

func TestWriteRosterCSV(t *testing.T) {
	roster := []domain.RosterEntry{
		{EmployeeID: 1, Type: domain.ShiftFullTime, Start: 9, End: 17, LunchStart: 780, LunchEnd: 810, Hours: 8},
		{EmployeeID: 1, Type: domain.ShiftPartTime, Start: 10, End: 14, LunchStart: 720, LunchEnd: 750, Hours: 4},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, export.WriteRosterCSV(buf, roster))

	expected := "employee,type,start,end,lunch_start,lunch_end,hours\n" +
		"1,FT,9:00,17:00,13:00,13:30,8\n" +
		"1,PT,10:00,14:00,12:00,12:30,4\n"
	assert.Equal(t, expected, buf.String())
}
