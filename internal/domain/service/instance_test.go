package service

import (
	"testing"
	"time"

	"github.com/diegoclair/duty-roster-bot/internal/roster"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstance(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	log, _ := logtest.NewNullLogger()
	cfg := DutyConfig{Parser: roster.NewParser(roster.DefaultConfig(), log), Location: time.UTC}

	t.Run("Should wire every service", func(t *testing.T) {
		instance := NewInstance(m.mockRowSource, cfg, m.mockDataManager, m.mockSlackClient, "C123", log)
		require.NotNil(t, instance.Duty)
		require.NotNil(t, instance.Importer)
		require.NotNil(t, instance.Announcer)
		assert.Same(t, instance.Duty, instance.Announcer.duty)
	})

	t.Run("Should leave the announcer off without a channel", func(t *testing.T) {
		instance := NewInstance(m.mockRowSource, cfg, nil, m.mockSlackClient, "", log)
		require.NotNil(t, instance.Duty)
		assert.Nil(t, instance.Importer)
		assert.Nil(t, instance.Announcer)
	})

	t.Run("Should default to the local timezone", func(t *testing.T) {
		instance := NewInstance(m.mockRowSource, DutyConfig{Parser: cfg.Parser}, nil, nil, "", log)
		assert.Equal(t, time.Local, instance.Duty.loc)
	})
}
