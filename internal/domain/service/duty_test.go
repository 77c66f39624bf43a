package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/duty-roster-bot/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_dutyService_CurrentDuty(t *testing.T) {
	tests := []struct {
		name       string
		now        time.Time
		rowsErr    error
		wantOnDuty []roster.Person
		wantToken  string
		wantErrIs  error
		wantErr    bool
	}{
		{
			name:       "Should return the on-duty persons of the current interval",
			now:        dec(2, 8, 0),
			wantOnDuty: []roster.Person{"B"},
			wantToken:  "7:30-14:30",
		},
		{
			name:       "Should follow the evening interval",
			now:        dec(2, 20, 0),
			wantOnDuty: []roster.Person{"A"},
			wantToken:  "14:30-22:30",
		},
		{
			name: "Should return an empty set outside every interval",
			now:  dec(2, 23, 0),
		},
		{
			name:      "Should report a date missing from the table",
			now:       dec(5, 10, 0),
			wantErrIs: roster.ErrNoData,
		},
		{
			name:    "Should fail when the source fails",
			now:     dec(2, 8, 0),
			rowsErr: errors.New("connection refused"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			m.mockRowSource.EXPECT().Rows(gomock.Any()).Return(testRows, tt.rowsErr)

			s := newTestDuty(t, m, tt.now)
			got, err := s.CurrentDuty(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOnDuty, got.OnDuty)
			if tt.wantToken != "" {
				require.NotNil(t, got.Interval)
				assert.Equal(t, tt.wantToken, got.Interval.Token)
			}
		})
	}
}

func Test_dutyService_DutyAt_UsesConfiguredTimezone(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockRowSource.EXPECT().Rows(gomock.Any()).Return(testRows, nil)

	s := newTestDuty(t, m, dec(1, 0, 0))
	s.loc = time.FixedZone("MSK", 3*60*60)

	// 05:00 UTC is 08:00 in the roster's timezone.
	got, err := s.DutyAt(context.Background(), dec(2, 5, 0))
	require.NoError(t, err)
	assert.Equal(t, []roster.Person{"B"}, got.OnDuty)
}

func Test_dutyService_PinnedYear(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockRowSource.EXPECT().Rows(gomock.Any()).Return(testRows, nil)

	s := newTestDuty(t, m, dec(2, 8, 0))
	s.year = 2023

	_, err := s.CurrentDuty(context.Background())
	assert.ErrorIs(t, err, roster.ErrNoData)
}

func Test_dutyService_PersonSchedule(t *testing.T) {
	t.Run("Should resolve the person case-insensitively", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockRowSource.EXPECT().Rows(gomock.Any()).Return(testRows, nil)

		s := newTestDuty(t, m, dec(2, 8, 0))
		got, err := s.PersonSchedule(context.Background(), "a", 7)
		require.NoError(t, err)

		assert.Equal(t, roster.Person("A"), got.Person)
		require.Len(t, got.Days, 2)
		assert.Equal(t, roster.Working, got.Days[0].Status)
		assert.Equal(t, []roster.Window{{Start: roster.NewClock(14, 30, 0), End: roster.NewClock(22, 30, 0)}}, got.Days[0].DutyIntervals)
		assert.Equal(t, roster.DayOff, got.Days[1].Status)
		assert.Empty(t, got.Days[1].DutyIntervals)
	})

	t.Run("Should reject an unknown person without loading", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestDuty(t, m, dec(2, 8, 0))
		_, err := s.PersonSchedule(context.Background(), "Zed", 7)
		assert.ErrorIs(t, err, roster.ErrPersonNotFound)
		assert.ErrorIs(t, err, roster.ErrNoSchedule)
	})

	t.Run("Should start from an explicit day", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockRowSource.EXPECT().Rows(gomock.Any()).Return(testRows, nil)

		s := newTestDuty(t, m, dec(1, 0, 0))
		got, err := s.ScheduleFrom(context.Background(), "B", roster.Date{Year: 2024, Month: time.December, Day: 3}, 1)
		require.NoError(t, err)
		require.Len(t, got.Days, 1)
		assert.Equal(t, roster.Working, got.Days[0].Status)
	})
}

func Test_dutyService_SlackUserSchedule(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockRowSource.EXPECT().Rows(gomock.Any()).Return(testRows, nil)

	s := newTestDuty(t, m, dec(2, 8, 0))

	got, err := s.SlackUserSchedule(context.Background(), "U1", 1)
	require.NoError(t, err)
	assert.Equal(t, roster.Person("A"), got.Person)

	_, err = s.SlackUserSchedule(context.Background(), "U9", 1)
	assert.ErrorIs(t, err, ErrUnlinkedSlackUser)
}

func Test_dutyService_Diagnostics(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	rows := append([][]string{{"пн, 35 дек.", "7:30-14:30", "+", ""}}, testRows...)
	m.mockRowSource.EXPECT().Rows(gomock.Any()).Return(rows, nil)

	s := newTestDuty(t, m, dec(2, 8, 0))
	got, err := s.Diagnostics(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.ErrorIs(t, got[0], roster.ErrDateHeaderUnparsable)
}

func Test_dutyService_nextIntervalStart(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		want   time.Time
		wantOK bool
	}{
		{name: "Should return the next start today", now: dec(2, 8, 0), want: dec(2, 14, 30), wantOK: true},
		{name: "Should include a start at the current second", now: dec(2, 7, 30), want: dec(2, 7, 30), wantOK: true},
		{name: "Should report nothing left today", now: dec(2, 23, 0)},
		{name: "Should report nothing for a missing day", now: dec(9, 8, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			m.mockRowSource.EXPECT().Rows(gomock.Any()).Return(testRows, nil)

			s := newTestDuty(t, m, tt.now)
			got, ok, err := s.nextIntervalStart(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			}
		})
	}
}

func Test_dutyService_Persons(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestDuty(t, m, dec(2, 8, 0))

	persons := s.Persons()
	assert.Equal(t, []roster.Person{"A", "B"}, persons)

	persons[0] = "mutated"
	assert.Equal(t, []roster.Person{"A", "B"}, s.Persons())
}
