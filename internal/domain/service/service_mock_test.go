package service

import (
	"testing"
	"time"

	"github.com/diegoclair/duty-roster-bot/internal/roster"
	"github.com/diegoclair/duty-roster-bot/mocks"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager   *mocks.MockDataManager
	mockRosterRowRepo *mocks.MockRosterRowRepo
	mockRowSource     *mocks.MockRowSource
	mockSlackClient   *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	rosterRowRepo := mocks.NewMockRosterRowRepo(ctrl)
	dm.EXPECT().RosterRow().Return(rosterRowRepo).AnyTimes()

	m = allMocks{
		mockDataManager:   dm,
		mockRosterRowRepo: rosterRowRepo,
		mockRowSource:     mocks.NewMockRowSource(ctrl),
		mockSlackClient:   mocks.NewMockSlackClient(ctrl),
	}

	return
}

// testRows covers 2 and 3 December for persons A and B.
var testRows = [][]string{
	{"пн, 2 дек.", "7:30-14:30", "", "+"},
	{"", "14:30-22:30", "+", ""},
	{"вт, 3 дек.", "9:00-18:00", "в", "+"},
}

func newTestDuty(t *testing.T, m allMocks, now time.Time) *dutyService {
	t.Helper()

	cfg := roster.DefaultConfig()
	cfg.Persons = []roster.Person{"A", "B"}
	require.NoError(t, cfg.Validate())

	log, _ := logtest.NewNullLogger()

	s := newDuty(m.mockRowSource, DutyConfig{
		Parser:         roster.NewParser(cfg, log),
		Location:       time.UTC,
		SlackDirectory: map[string]roster.Person{"U1": "A"},
	}, log)
	s.now = func() time.Time { return now }
	return s
}

func dec(day, hour, minute int) time.Time {
	return time.Date(2024, time.December, day, hour, minute, 0, 0, time.UTC)
}
