package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/duty-roster-bot/internal/domain/contract"
	"github.com/diegoclair/duty-roster-bot/internal/roster"
	"github.com/sirupsen/logrus"
)

// ErrUnlinkedSlackUser is returned when a Slack user has no slack_id entry in
// the roster definition.
var ErrUnlinkedSlackUser = errors.New("slack user is not linked to a roster person")

// DutyConfig carries what the duty service needs besides its row source.
type DutyConfig struct {
	Parser *roster.Parser
	// Year pins the year attached to day headers; zero means the current
	// year in Location.
	Year           int
	Location       *time.Location
	SlackDirectory map[string]roster.Person
}

type dutyService struct {
	source         contract.RowSource
	parser         *roster.Parser
	year           int
	loc            *time.Location
	slackDirectory map[string]roster.Person
	now            func() time.Time
	log            logrus.FieldLogger
}

func newDuty(source contract.RowSource, cfg DutyConfig, log logrus.FieldLogger) *dutyService {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	return &dutyService{
		source:         source,
		parser:         cfg.Parser,
		year:           cfg.Year,
		loc:            loc,
		slackDirectory: cfg.SlackDirectory,
		now:            time.Now,
		log:            log,
	}
}

// load fetches the current snapshot and builds a fresh roster from it, with
// headers dated in the year of now. Nothing is cached between calls.
func (s *dutyService) load(ctx context.Context, now time.Time) (*roster.Roster, error) {
	rows, err := s.source.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster rows: %w", err)
	}

	year := s.year
	if year == 0 {
		year = now.Year()
	}

	r := s.parser.Parse(rows, year)
	s.log.WithFields(logrus.Fields{
		"rows":        len(rows),
		"days":        len(r.Dates()),
		"diagnostics": len(r.Diagnostics()),
	}).Debug("Roster loaded")

	return r, nil
}

func (s *dutyService) CurrentDuty(ctx context.Context) (roster.DutyResult, error) {
	return s.DutyAt(ctx, s.now())
}

// DutyAt resolves the on-duty set at the given moment, seen in the
// configured timezone.
func (s *dutyService) DutyAt(ctx context.Context, at time.Time) (roster.DutyResult, error) {
	at = at.In(s.loc)
	r, err := s.load(ctx, at)
	if err != nil {
		return roster.DutyResult{}, err
	}
	return r.OnDuty(at)
}

// PersonSchedule resolves name against the tracked persons and returns their
// schedule for the next days, starting today.
func (s *dutyService) PersonSchedule(ctx context.Context, name string, days int) (roster.Schedule, error) {
	return s.ScheduleFrom(ctx, name, s.today(), days)
}

// ScheduleFrom is PersonSchedule with an explicit first day.
func (s *dutyService) ScheduleFrom(ctx context.Context, name string, from roster.Date, days int) (roster.Schedule, error) {
	person, ok := roster.FindPerson(s.parser.Config().Persons, name)
	if !ok {
		return roster.Schedule{}, fmt.Errorf("%w: %q", roster.ErrPersonNotFound, name)
	}
	return s.schedule(ctx, person, from, days)
}

func (s *dutyService) SlackUserSchedule(ctx context.Context, slackUserID string, days int) (roster.Schedule, error) {
	person, ok := s.slackDirectory[slackUserID]
	if !ok {
		return roster.Schedule{}, ErrUnlinkedSlackUser
	}
	return s.schedule(ctx, person, s.today(), days)
}

func (s *dutyService) schedule(ctx context.Context, person roster.Person, from roster.Date, days int) (roster.Schedule, error) {
	r, err := s.load(ctx, from.In(s.loc))
	if err != nil {
		return roster.Schedule{}, err
	}
	return r.Schedule(person, from, days)
}

func (s *dutyService) today() roster.Date {
	return roster.DateOf(s.now().In(s.loc))
}

func (s *dutyService) Persons() []roster.Person {
	return append([]roster.Person(nil), s.parser.Config().Persons...)
}

func (s *dutyService) Vocabulary() roster.Vocabulary {
	return s.parser.Config().Vocabulary
}

// Diagnostics returns the parse failures recovered while ingesting the
// current snapshot.
func (s *dutyService) Diagnostics(ctx context.Context) ([]roster.Diagnostic, error) {
	r, err := s.load(ctx, s.now().In(s.loc))
	if err != nil {
		return nil, err
	}
	return r.Diagnostics(), nil
}

// nextIntervalStart returns the next moment today, now included, at which an
// interval starts, or false when none is left.
func (s *dutyService) nextIntervalStart(ctx context.Context) (time.Time, bool, error) {
	now := s.now().In(s.loc)
	r, err := s.load(ctx, now)
	if err != nil {
		return time.Time{}, false, err
	}

	starts := r.Upcoming(now)
	if len(starts) == 0 {
		return time.Time{}, false, nil
	}

	return starts[0].On(roster.DateOf(now), s.loc), true, nil
}
