package roster

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	headerColumn   = 0
	intervalColumn = 1
	firstPerson    = 2
)

// Parser ingests raw table rows into a Roster. A Parser holds no state
// between calls and may be shared.
type Parser struct {
	cfg Config
	log logrus.FieldLogger
}

func NewParser(cfg Config, log logrus.FieldLogger) *Parser {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Parser{cfg: cfg, log: log}
}

func (p *Parser) Config() Config {
	return p.cfg
}

type sourceRow struct {
	num   int
	cells []string
}

// ingestion is the accumulator of a single Parse call.
type ingestion struct {
	parser  *Parser
	roster  *Roster
	open    bool
	date    Date
	records []sourceRow
}

// Parse builds a Roster from rows. Day headers carry no year, so year is
// attached to every date. Malformed headers and time tokens are logged,
// recorded as diagnostics and skipped at the smallest possible scope.
func (p *Parser) Parse(rows [][]string, year int) *Roster {
	in := &ingestion{
		parser: p,
		roster: &Roster{
			persons: append([]Person(nil), p.cfg.Persons...),
			days:    make(map[Date]Day),
		},
	}

	for i, cells := range rows {
		row := sourceRow{num: i + 1, cells: cells}

		if header := cell(cells, headerColumn); header != "" {
			in.seal()

			date, err := p.parseHeader(header, year)
			if err != nil {
				in.report(row.num, header, err)
				p.log.WithFields(logrus.Fields{"row": row.num, "cell": header}).
					WithError(err).Error("Dropping rows until the next valid day header")
				in.open = false
				continue
			}
			in.open = true
			in.date = date
		}

		if in.open {
			in.records = append(in.records, row)
		}
	}
	in.seal()

	return in.roster
}

// seal resolves the open day, if any, and stores it in the roster.
func (in *ingestion) seal() {
	if !in.open || len(in.records) == 0 {
		in.records = nil
		return
	}

	day := in.resolveDay()
	if _, exists := in.roster.days[day.Date]; exists {
		in.parser.log.WithField("date", day.Date.String()).
			Warn("Date appears twice in the table, keeping the later block")
	}
	in.roster.days[day.Date] = day

	in.open = false
	in.records = nil
}

func (in *ingestion) report(row int, text string, err error) {
	in.roster.diagnostics = append(in.roster.diagnostics, Diagnostic{Row: row, Cell: text, Err: err})
}

// resolveDay runs the two passes over a day's rows: day-states first, across
// every row, then per-interval duties.
func (in *ingestion) resolveDay() Day {
	p := in.parser
	states := p.resolveDayStates(in.records)

	day := Day{Date: in.date, States: states}
	for _, row := range in.records {
		token := cell(row.cells, intervalColumn)
		if token == "" {
			continue
		}

		iv := Interval{
			Row:       row.num,
			Token:     token,
			Duties:    p.resolveDuties(row.cells, states),
			DayStates: states,
		}

		window, err := ParseWindow(token)
		if err != nil {
			in.report(row.num, token, err)
			p.log.WithFields(logrus.Fields{"row": row.num, "cell": token, "date": in.date.String()}).
				WithError(err).Warn("Interval kept without time bounds")
		} else {
			iv.Window = &window
		}

		day.Intervals = append(day.Intervals, iv)
	}

	return day
}

// resolveDayStates derives each person's whole-day state. Leave and day-off
// markers override working evidence found anywhere else in the day.
func (p *Parser) resolveDayStates(records []sourceRow) map[Person]DayState {
	states := make(map[Person]DayState, len(p.cfg.Persons))
	for _, person := range p.cfg.Persons {
		states[person] = Unset
	}

	for _, row := range records {
		for i, person := range p.cfg.Persons {
			switch s := p.markerState(cell(row.cells, firstPerson+i)); {
			case s.Absent():
				states[person] = s
			case s == Working && !states[person].Absent():
				states[person] = Working
			}
		}
	}

	return states
}

func (p *Parser) resolveDuties(cells []string, states map[Person]DayState) map[Person]bool {
	duties := make(map[Person]bool, len(p.cfg.Persons))
	for i, person := range p.cfg.Persons {
		if states[person].Absent() {
			duties[person] = false
			continue
		}
		duties[person] = p.isMarker(cell(cells, firstPerson+i), p.cfg.Markers.Duty)
	}
	return duties
}

// markerState maps a cell symbol to the day-state it implies. A duty marker
// is evidence of a working day.
func (p *Parser) markerState(symbol string) DayState {
	m := p.cfg.Markers
	switch {
	case p.isMarker(symbol, m.OnLeave):
		return OnLeave
	case p.isMarker(symbol, m.DayOff):
		return DayOff
	case p.isMarker(symbol, m.Working), p.isMarker(symbol, m.Duty):
		return Working
	default:
		return Unset
	}
}

func (p *Parser) isMarker(symbol, marker string) bool {
	return symbol != "" && strings.EqualFold(symbol, marker)
}

// parseHeader parses "<weekday>, <day> <month>." and attaches year. Only the
// part between the first and the next comma is read; the weekday and any
// trailing parts are not checked.
func (p *Parser) parseHeader(header string, year int) (Date, error) {
	_, rest, ok := strings.Cut(header, ",")
	if !ok {
		return Date{}, fmt.Errorf("%w: %q: missing ','", ErrDateHeaderUnparsable, header)
	}
	rest, _, _ = strings.Cut(rest, ",")

	fields := strings.Fields(strings.ReplaceAll(rest, ".", " "))
	if len(fields) != 2 {
		return Date{}, fmt.Errorf("%w: %q: want '<day> <month>'", ErrDateHeaderUnparsable, header)
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil || day < 1 || day > 31 {
		return Date{}, fmt.Errorf("%w: %q: invalid day %q", ErrDateHeaderUnparsable, header, fields[0])
	}
	month, ok := p.cfg.Vocabulary.Month(fields[1])
	if !ok {
		return Date{}, fmt.Errorf("%w: %q: unknown month %q", ErrDateHeaderUnparsable, header, fields[1])
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Month() != month {
		return Date{}, fmt.Errorf("%w: %q: %s has no day %d in %d", ErrDateHeaderUnparsable, header, month, day, year)
	}

	return DateOf(t), nil
}

// cell returns the trimmed cell at i, or "" for short rows.
func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}
