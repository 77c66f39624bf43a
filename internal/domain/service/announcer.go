package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/duty-roster-bot/internal/domain/contract"
	slackfmt "github.com/diegoclair/duty-roster-bot/internal/domain/slack"
	"github.com/diegoclair/duty-roster-bot/internal/roster"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

const (
	announceTimeout = 30 * time.Second
	retryAfter      = 5 * time.Minute
)

// announcer posts the on-duty set to a channel whenever an interval of the
// current day starts.
type announcer struct {
	duty        *dutyService
	slackClient contract.SlackClient
	channelID   string
	stopChan    chan struct{}
	done        chan struct{}
	running     bool
	log         logrus.FieldLogger
}

func newAnnouncer(duty *dutyService, slackClient contract.SlackClient, channelID string, log logrus.FieldLogger) *announcer {
	return &announcer{
		duty:        duty,
		slackClient: slackClient,
		channelID:   channelID,
		stopChan:    make(chan struct{}),
		done:        make(chan struct{}),
		running:     false,
		log:         log.WithField("channel", channelID),
	}
}

func (a *announcer) Start() {
	if a.running {
		return
	}
	a.running = true
	a.log.Info("Announcer starting...")
	go a.mainLoop()
}

// Stop ends the loop and waits for it to return.
func (a *announcer) Stop() {
	if !a.running {
		return
	}
	a.log.Info("Announcer stopping...")
	close(a.stopChan)
	<-a.done
	a.running = false
}

func (a *announcer) mainLoop() {
	defer close(a.done)

	for {
		next, announce := a.nextWakeup()

		wait := next.Sub(a.duty.now())
		if wait < 0 {
			wait = 0
		}
		a.log.WithFields(logrus.Fields{
			"at":       next.Format(time.RFC3339),
			"announce": announce,
		}).Debug("Next wakeup scheduled")

		timer := time.NewTimer(wait)

		select {
		case <-timer.C:
			if announce {
				if err := a.announce(); err != nil {
					a.log.WithError(err).Error("Failed to announce duty")
				}
			}

		case <-a.stopChan:
			timer.Stop()
			return
		}
	}
}

// nextWakeup returns when the loop should wake up next and whether that
// wakeup is an interval start. Intervals are announced one second after
// they start, since the closing interval still contains its end second.
// With nothing left today the loop sleeps until midnight; a failed load is
// retried a few minutes later.
func (a *announcer) nextWakeup() (time.Time, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), announceTimeout)
	defer cancel()

	start, ok, err := a.duty.nextIntervalStart(ctx)
	if err != nil {
		a.log.WithError(err).Warn("Could not compute the next interval start")
		return a.duty.now().Add(retryAfter), false
	}
	if ok {
		return start.Add(time.Second), true
	}

	today := roster.DateOf(a.duty.now().In(a.duty.loc))
	return today.AddDays(1).In(a.duty.loc), false
}

func (a *announcer) announce() error {
	ctx, cancel := context.WithTimeout(context.Background(), announceTimeout)
	defer cancel()

	res, err := a.duty.CurrentDuty(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve current duty: %w", err)
	}

	if len(res.OnDuty) == 0 {
		a.log.Info("Nobody on duty for the new interval, skipping announcement")
		return nil
	}

	message := "🔔 *Shift change*\n\n" + slackfmt.FormatDuty(res)

	_, _, err = a.slackClient.PostMessage(
		a.channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	a.log.WithField("on_duty", len(res.OnDuty)).Info("Duty announced")
	return nil
}
