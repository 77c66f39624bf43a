package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/diegoclair/duty-roster-bot/internal/roster"
	"github.com/pelletier/go-toml/v2"
)

// RosterFile is the TOML definition of the tracked team and the table's
// vocabulary.
type RosterFile struct {
	// Year pins the year attached to day headers. Zero means the current
	// year at query time.
	Year         int            `toml:"year"`
	Persons      []PersonEntry  `toml:"persons"`
	Markers      *MarkersEntry  `toml:"markers"`
	Weekdays     []string       `toml:"weekdays"`
	Months       []string       `toml:"months"`
	MonthAliases map[string]int `toml:"month_aliases"`
}

type PersonEntry struct {
	Name    string `toml:"name"`
	SlackID string `toml:"slack_id"`
}

type MarkersEntry struct {
	Working string `toml:"working"`
	OnLeave string `toml:"on_leave"`
	DayOff  string `toml:"day_off"`
	Duty    string `toml:"duty"`
}

func defaultRosterFile() *RosterFile {
	persons := make([]PersonEntry, 0, len(roster.DefaultPersons))
	for _, p := range roster.DefaultPersons {
		persons = append(persons, PersonEntry{Name: string(p)})
	}
	return &RosterFile{Persons: persons}
}

// ReadRoster loads the roster definition at path. A missing file yields the
// built-in defaults.
func ReadRoster(path string) (*RosterFile, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return defaultRosterFile(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster config: %w", err)
	}

	return ParseRoster(data)
}

func ParseRoster(data []byte) (*RosterFile, error) {
	file := &RosterFile{}
	if err := toml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to parse roster config: %w", err)
	}
	if len(file.Persons) == 0 {
		file.Persons = defaultRosterFile().Persons
	}
	if _, err := file.Engine(); err != nil {
		return nil, err
	}
	return file, nil
}

// Engine builds the parser configuration, falling back to the defaults for
// anything the file leaves out.
func (f *RosterFile) Engine() (roster.Config, error) {
	cfg := roster.DefaultConfig()

	cfg.Persons = make([]roster.Person, 0, len(f.Persons))
	for _, p := range f.Persons {
		cfg.Persons = append(cfg.Persons, roster.Person(strings.TrimSpace(p.Name)))
	}

	if m := f.Markers; m != nil {
		cfg.Markers = roster.Markers{
			Working: orDefault(m.Working, cfg.Markers.Working),
			OnLeave: orDefault(m.OnLeave, cfg.Markers.OnLeave),
			DayOff:  orDefault(m.DayOff, cfg.Markers.DayOff),
			Duty:    orDefault(m.Duty, cfg.Markers.Duty),
		}
	}

	if len(f.Weekdays) > 0 {
		if len(f.Weekdays) != 7 {
			return roster.Config{}, fmt.Errorf("weekdays: want 7 names starting with Sunday, got %d", len(f.Weekdays))
		}
		copy(cfg.Vocabulary.Weekdays[:], f.Weekdays)
	}

	if len(f.Months) > 0 {
		if len(f.Months) != 12 {
			return roster.Config{}, fmt.Errorf("months: want 12 names starting with January, got %d", len(f.Months))
		}
		copy(cfg.Vocabulary.Months[:], f.Months)
		cfg.Vocabulary.Aliases = map[string]time.Month{}
	}

	if len(f.MonthAliases) > 0 {
		aliases := make(map[string]time.Month, len(cfg.Vocabulary.Aliases)+len(f.MonthAliases))
		for alias, m := range cfg.Vocabulary.Aliases {
			aliases[alias] = m
		}
		for alias, m := range f.MonthAliases {
			if m < 1 || m > 12 {
				return roster.Config{}, fmt.Errorf("month alias %q: month %d out of range", alias, m)
			}
			aliases[alias] = time.Month(m)
		}
		cfg.Vocabulary.Aliases = aliases
	}

	if err := cfg.Validate(); err != nil {
		return roster.Config{}, fmt.Errorf("invalid roster config: %w", err)
	}
	return cfg, nil
}

// SlackDirectory maps Slack user ids to tracked persons.
func (f *RosterFile) SlackDirectory() map[string]roster.Person {
	dir := make(map[string]roster.Person)
	for _, p := range f.Persons {
		if p.SlackID != "" {
			dir[p.SlackID] = roster.Person(strings.TrimSpace(p.Name))
		}
	}
	return dir
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}
