package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkDay(t *testing.T) {
	w, err := ParseWorkDay("09:00", "17:30", 15*time.Minute, "Asia/Jakarta")
	require.NoError(t, err)

	assert.Equal(t, 9*time.Hour, w.Start)
	assert.Equal(t, 17*time.Hour+30*time.Minute, w.End)
	assert.Equal(t, "Asia/Jakarta", w.Location.String())

	_, err = ParseWorkDay("9am", "17:00", 0, "UTC")
	assert.Error(t, err)
	_, err = ParseWorkDay("18:00", "17:00", 0, "UTC")
	assert.Error(t, err)
	_, err = ParseWorkDay("09:00", "17:00", 0, "Mars/Olympus")
	assert.Error(t, err)
}

func TestWorkDay_StatusAt(t *testing.T) {
	w, err := ParseWorkDay("09:00", "17:00", 10*time.Minute, "Asia/Jakarta")
	require.NoError(t, err)

	// Jakarta is UTC+7.
	assert.Equal(t, StatusPresent, w.StatusAt(time.Date(2024, 6, 3, 1, 55, 0, 0, time.UTC)))
	assert.Equal(t, StatusPresent, w.StatusAt(time.Date(2024, 6, 3, 2, 10, 0, 0, time.UTC)))
	assert.Equal(t, StatusLate, w.StatusAt(time.Date(2024, 6, 3, 2, 11, 0, 0, time.UTC)))
}

func TestWorkDay_DateUsesLocalCalendar(t *testing.T) {
	w, err := ParseWorkDay("09:00", "17:00", 0, "Asia/Jakarta")
	require.NoError(t, err)

	got := w.Date(time.Date(2024, 6, 2, 20, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), got)

	end := w.ScheduledEnd(got)
	assert.Equal(t, time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), end.UTC())
}
