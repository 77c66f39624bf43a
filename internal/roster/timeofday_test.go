package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    Window
		wantErr bool
	}{
		{name: "Should parse single-digit hour", token: "7:30-14:30", want: Window{NewClock(7, 30, 0), NewClock(14, 30, 0)}},
		{name: "Should parse two-digit hours", token: "07:30-22:30", want: Window{NewClock(7, 30, 0), NewClock(22, 30, 0)}},
		{name: "Should strip spaces around halves", token: " 9:00 - 18:00 ", want: Window{NewClock(9, 0, 0), NewClock(18, 0, 0)}},
		{name: "Should accept midnight end", token: "0:00-23:59", want: Window{NewClock(0, 0, 0), NewClock(23, 59, 0)}},
		{name: "Should reject missing delimiter", token: "7:30 14:30", wantErr: true},
		{name: "Should reject extra delimiter", token: "7:30-14:30-22:30", wantErr: true},
		{name: "Should reject non-numeric parts", token: "aa:30-14:30", wantErr: true},
		{name: "Should reject missing colon", token: "730-1430", wantErr: true},
		{name: "Should reject hour out of range", token: "7:30-24:00", wantErr: true},
		{name: "Should reject minute out of range", token: "7:60-14:30", wantErr: true},
		{name: "Should reject signed numbers", token: "+7:30-14:30", wantErr: true},
		{name: "Should reject empty token", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWindow(tt.token)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrIntervalTimeUnparsable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindow_Contains(t *testing.T) {
	w := Window{Start: NewClock(7, 30, 0), End: NewClock(14, 30, 0)}

	assert.True(t, w.Contains(NewClock(7, 30, 0)))
	assert.True(t, w.Contains(NewClock(14, 30, 0)))
	assert.False(t, w.Contains(NewClock(14, 30, 1)))
	assert.False(t, w.Contains(NewClock(7, 29, 59)))
}

func TestClock_String(t *testing.T) {
	assert.Equal(t, "07:05", NewClock(7, 5, 0).String())
	assert.Equal(t, "23:59:30", NewClock(23, 59, 30).String())
	assert.Equal(t, NewClock(14, 30, 15), ClockOf(time.Date(2024, 1, 1, 14, 30, 15, 999, time.UTC)))
}

func TestDate(t *testing.T) {
	d := Date{2024, time.February, 28}

	assert.Equal(t, Date{2024, time.February, 29}, d.AddDays(1))
	assert.Equal(t, Date{2024, time.March, 1}, d.AddDays(2))
	assert.Equal(t, Date{2024, time.February, 29}, d.EndOfMonth())
	assert.Equal(t, Date{2025, time.February, 28}, Date{2025, time.February, 3}.EndOfMonth())
	assert.Equal(t, "2024-02-28", d.String())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.False(t, d.Before(d))

	parsed, err := ParseDate("2024-12-02")
	require.NoError(t, err)
	assert.Equal(t, Date{2024, time.December, 2}, parsed)

	_, err = ParseDate("02.12.2024")
	assert.Error(t, err)
}

func TestFindPerson(t *testing.T) {
	persons := []Person{"Дмитрий В.", "Дмитрий С.", "Софья", "Игорь"}

	tests := []struct {
		name   string
		input  string
		want   Person
		wantOK bool
	}{
		{name: "Should match exactly ignoring case", input: "софья", want: "Софья", wantOK: true},
		{name: "Should match unique prefix", input: "Иг", want: "Игорь", wantOK: true},
		{name: "Should match full name with initial", input: "дмитрий с.", want: "Дмитрий С.", wantOK: true},
		{name: "Should reject ambiguous prefix", input: "Дмитрий", wantOK: false},
		{name: "Should reject unknown name", input: "Ольга", wantOK: false},
		{name: "Should reject empty input", input: "  ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindPerson(persons, tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Persons = nil
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Persons = []Person{"A", "A"}
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Markers.Duty = cfg.Markers.Working
	assert.Error(t, cfg.Validate())
}

func TestClock_On(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	got := NewClock(14, 30, 5).On(Date{2024, time.December, 2}, loc)
	assert.Equal(t, time.Date(2024, time.December, 2, 14, 30, 5, 0, loc), got)
}
