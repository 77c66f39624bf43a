package service

import (
	"github.com/diegoclair/duty-roster-bot/internal/domain/contract"
	"github.com/sirupsen/logrus"
)

type Instance struct {
	Duty     *dutyService
	Importer *importService
	// Announcer is nil when no announce channel is configured.
	Announcer *announcer
}

// NewInstance wires the services. dm and slackClient may be nil when the
// caller never imports rows or announces.
func NewInstance(source contract.RowSource, cfg DutyConfig, dm contract.DataManager, slackClient contract.SlackClient, announceChannel string, log logrus.FieldLogger) *Instance {
	dutyService := newDuty(source, cfg, log)

	instance := &Instance{
		Duty: dutyService,
	}

	if dm != nil {
		instance.Importer = newImporter(dm, log)
	}

	if slackClient != nil && announceChannel != "" {
		instance.Announcer = newAnnouncer(dutyService, slackClient, announceChannel, log)
	}

	return instance
}
