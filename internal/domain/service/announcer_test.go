package service

import (
	"errors"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAnnouncer(t *testing.T, m allMocks, now time.Time) *announcer {
	t.Helper()

	log, _ := logtest.NewNullLogger()
	a := newAnnouncer(newTestDuty(t, m, now), m.mockSlackClient, "C123", log)
	require.NotNil(t, a)
	return a
}

func Test_newAnnouncer(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	a := newTestAnnouncer(t, m, dec(2, 8, 0))

	assert.Equal(t, "C123", a.channelID)
	assert.Equal(t, m.mockSlackClient, a.slackClient)
	assert.NotNil(t, a.stopChan)
	assert.NotNil(t, a.done)
	assert.False(t, a.running)
}

func Test_announcer_nextWakeup(t *testing.T) {
	tests := []struct {
		name         string
		now          time.Time
		rowsErr      error
		want         time.Time
		wantAnnounce bool
	}{
		{
			name:         "Should wake one second after the next interval start",
			now:          dec(2, 8, 0),
			want:         dec(2, 14, 30).Add(time.Second),
			wantAnnounce: true,
		},
		{
			name: "Should sleep until midnight when nothing is left today",
			now:  dec(2, 23, 0),
			want: dec(3, 0, 0),
		},
		{
			name:    "Should retry later when the table cannot be loaded",
			now:     dec(2, 8, 0),
			rowsErr: errors.New("timeout"),
			want:    dec(2, 8, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			m.mockRowSource.EXPECT().Rows(gomock.Any()).Return(testRows, tt.rowsErr)

			a := newTestAnnouncer(t, m, tt.now)
			got, announce := a.nextWakeup()

			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			assert.Equal(t, tt.wantAnnounce, announce)
		})
	}
}

func Test_announcer_announce(t *testing.T) {
	tests := []struct {
		name       string
		now        time.Time
		setupMocks func(m allMocks)
		wantErr    bool
	}{
		{
			name: "Should post the on-duty set to the channel",
			now:  dec(2, 14, 30).Add(time.Second),
			setupMocks: func(m allMocks) {
				m.mockSlackClient.EXPECT().
					PostMessage("C123", gomock.Any(), gomock.Any()).
					Return("C123", "1701500000.000100", nil)
			},
		},
		{
			name:       "Should stay quiet when nobody is on duty",
			now:        dec(2, 23, 0),
			setupMocks: func(m allMocks) {},
		},
		{
			name: "Should return Slack errors",
			now:  dec(2, 8, 0),
			setupMocks: func(m allMocks) {
				m.mockSlackClient.EXPECT().
					PostMessage("C123", gomock.Any(), gomock.Any()).
					Return("", "", errors.New("channel_not_found"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			m.mockRowSource.EXPECT().Rows(gomock.Any()).Return(testRows, nil)
			tt.setupMocks(m)

			a := newTestAnnouncer(t, m, tt.now)
			err := a.announce()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_announcer_StartStop(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockRowSource.EXPECT().Rows(gomock.Any()).Return(testRows, nil).AnyTimes()

	a := newTestAnnouncer(t, m, dec(2, 8, 0))

	a.Start()
	assert.True(t, a.running)

	a.Start()
	assert.True(t, a.running)

	a.Stop()
	assert.False(t, a.running)

	a.Stop()
	assert.False(t, a.running)
}
