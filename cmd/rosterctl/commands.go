package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/duty-roster-bot/internal/config"
	"github.com/diegoclair/duty-roster-bot/internal/database"
	"github.com/diegoclair/duty-roster-bot/internal/domain/contract"
	"github.com/diegoclair/duty-roster-bot/internal/domain/service"
	"github.com/diegoclair/duty-roster-bot/internal/logger"
	"github.com/diegoclair/duty-roster-bot/internal/roster"
	"github.com/diegoclair/duty-roster-bot/internal/source"
	"github.com/diegoclair/duty-roster-bot/migrator/sqlite"
	"github.com/urfave/cli/v2"
)

const defaultTimeout = 10 * time.Second

type options struct {
	source     string
	configPath string
	dbPath     string
	timezone   string
	timeout    time.Duration
	logLevel   string
}

// session holds the services of one command run.
type session struct {
	services *service.Instance
	vocab    roster.Vocabulary
	close    func()
}

// open builds the services for opts. The database is only opened when the
// source is the SQLite snapshot or withDB is set.
func open(cCtx *cli.Context, opts options, withDB bool) (*session, error) {
	log := logger.New("development", opts.logLevel)
	log.SetOutput(cCtx.App.ErrWriter)

	loc, err := (&config.Config{Timezone: opts.timezone}).Location()
	if err != nil {
		return nil, err
	}

	rosterFile, err := config.ReadRoster(opts.configPath)
	if err != nil {
		return nil, err
	}
	engineCfg, err := rosterFile.Engine()
	if err != nil {
		return nil, err
	}

	s := &session{vocab: engineCfg.Vocabulary, close: func() {}}

	var dm contract.DataManager
	if withDB || opts.source == source.KindSQLite {
		db, err := database.New(opts.dbPath)
		if err != nil {
			return nil, err
		}
		if err := sqlite.Migrate(db.DB()); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		dm = database.NewInstance(db)
		s.close = func() { db.Close() }
	}

	timeout := opts.timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	s.services = service.NewInstance(
		source.New(opts.source, timeout, dm),
		service.DutyConfig{
			Parser:         roster.NewParser(engineCfg, log),
			Year:           rosterFile.Year,
			Location:       loc,
			SlackDirectory: rosterFile.SlackDirectory(),
		},
		dm,
		nil,
		"",
		log,
	)

	return s, nil
}

func runNow(cCtx *cli.Context, opts options) error {
	s, err := open(cCtx, opts, false)
	if err != nil {
		return err
	}
	defer s.close()

	at := time.Now()
	if ts := cCtx.Timestamp("at"); ts != nil {
		at = *ts
	}

	res, err := s.services.Duty.DutyAt(cCtx.Context, at)
	if err != nil {
		return err
	}

	out := cCtx.App.Writer
	if res.Interval == nil {
		fmt.Fprintf(out, "%s: no interval covers this time\n", res.Date)
		return nil
	}

	names := make([]string, 0, len(res.OnDuty))
	for _, p := range res.OnDuty {
		names = append(names, string(p))
	}
	if len(names) == 0 {
		names = append(names, "nobody")
	}

	fmt.Fprintf(out, "%s %s: %s\n", res.Date, res.Interval.Token, strings.Join(names, ", "))
	return nil
}

func runSchedule(cCtx *cli.Context, opts options) error {
	s, err := open(cCtx, opts, false)
	if err != nil {
		return err
	}
	defer s.close()

	var schedule roster.Schedule
	if from := cCtx.String("from"); from != "" {
		date, parseErr := roster.ParseDate(from)
		if parseErr != nil {
			return fmt.Errorf("invalid --from %q: %w", from, parseErr)
		}
		schedule, err = s.services.Duty.ScheduleFrom(cCtx.Context, cCtx.String("person"), date, cCtx.Int("days"))
	} else {
		schedule, err = s.services.Duty.PersonSchedule(cCtx.Context, cCtx.String("person"), cCtx.Int("days"))
	}
	if err != nil {
		return err
	}

	out := cCtx.App.Writer
	fmt.Fprintf(out, "%s, %s to %s\n", schedule.Person, schedule.From, schedule.To)
	for _, day := range schedule.Days {
		line := fmt.Sprintf("%s %s %s", day.Date, s.vocab.Weekday(day.Weekday), day.Status)
		for _, w := range day.DutyIntervals {
			line += " duty " + w.String()
		}
		fmt.Fprintln(out, line)
	}
	if schedule.Clamped {
		fmt.Fprintln(out, "(clamped to the end of the month)")
	}
	return nil
}

// errProblemsFound makes check exit non-zero.
var errProblemsFound = errors.New("table has parse problems")

func runCheck(cCtx *cli.Context, opts options) error {
	s, err := open(cCtx, opts, false)
	if err != nil {
		return err
	}
	defer s.close()

	diags, err := s.services.Duty.Diagnostics(cCtx.Context)
	if err != nil {
		return err
	}

	out := cCtx.App.Writer
	if len(diags) == 0 {
		fmt.Fprintln(out, "No problems found")
		return nil
	}

	for _, d := range diags {
		fmt.Fprintln(out, d.Error())
	}
	return fmt.Errorf("%w: %d", errProblemsFound, len(diags))
}

func runImport(cCtx *cli.Context, opts options) error {
	s, err := open(cCtx, opts, true)
	if err != nil {
		return err
	}
	defer s.close()

	path := cCtx.String("csv")
	ctx, cancel := context.WithTimeout(cCtx.Context, time.Minute)
	defer cancel()

	rows, err := source.NewFile(path).Rows(ctx)
	if err != nil {
		return err
	}

	n, err := s.services.Importer.Replace(ctx, rows)
	if err != nil {
		return err
	}

	fmt.Fprintf(cCtx.App.Writer, "Imported %d rows from %s into %s\n", n, path, opts.dbPath)
	return nil
}
