package roster

import (
	"fmt"
	"strings"
	"time"
)

// Markers are the single-cell symbols of the table.
type Markers struct {
	Working string
	OnLeave string
	DayOff  string
	Duty    string
}

// Vocabulary holds the locale-specific names used in day headers.
type Vocabulary struct {
	// Weekdays is indexed by time.Weekday (Sunday first).
	Weekdays [7]string
	// Months holds the canonical abbreviation of each month, January first.
	Months [12]string
	// Aliases are extra accepted month spellings.
	Aliases map[string]time.Month
}

// Config describes one table layout: the tracked persons in column order
// (starting at column 2), the markers and the header vocabulary.
type Config struct {
	Persons    []Person
	Markers    Markers
	Vocabulary Vocabulary
}

// DefaultPersons is the team used when no roster file is present.
var DefaultPersons = []Person{
	"Александр Д.", "Софья", "Игорь", "Дмитрий В.", "Дмитрий С.",
	"Надежда", "Никита", "Екатерина", "Алексей",
}

var DefaultMarkers = Markers{
	Working: "р",
	OnLeave: "о",
	DayOff:  "в",
	Duty:    "+",
}

var DefaultVocabulary = Vocabulary{
	Weekdays: [7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
	Months:   [12]string{"янв", "фев", "мар", "апр", "мая", "июн", "июл", "авг", "сен", "окт", "ноя", "дек"},
	Aliases: map[string]time.Month{
		"май":  time.May,
		"февр": time.February,
		"сент": time.September,
		"нояб": time.November,
	},
}

func DefaultConfig() Config {
	return Config{
		Persons:    append([]Person(nil), DefaultPersons...),
		Markers:    DefaultMarkers,
		Vocabulary: DefaultVocabulary,
	}
}

// Validate rejects layouts the parser cannot work with.
func (c Config) Validate() error {
	if len(c.Persons) == 0 {
		return fmt.Errorf("roster has no persons")
	}
	seen := make(map[Person]bool, len(c.Persons))
	for _, p := range c.Persons {
		if strings.TrimSpace(string(p)) == "" {
			return fmt.Errorf("roster contains an empty person name")
		}
		if seen[p] {
			return fmt.Errorf("person %q is listed twice", p)
		}
		seen[p] = true
	}

	m := c.Markers
	markers := []string{m.Working, m.OnLeave, m.DayOff, m.Duty}
	for i, a := range markers {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("markers must not be empty")
		}
		for _, b := range markers[i+1:] {
			if strings.EqualFold(a, b) {
				return fmt.Errorf("marker %q is used twice", a)
			}
		}
	}

	for i, name := range c.Vocabulary.Months {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("no abbreviation for month %s", time.Month(i+1))
		}
	}
	return nil
}

// Month resolves a month abbreviation, ignoring case and dots.
func (v Vocabulary) Month(name string) (time.Month, bool) {
	name = normalizeWord(name)
	for i, m := range v.Months {
		if normalizeWord(m) == name {
			return time.Month(i + 1), true
		}
	}
	for alias, m := range v.Aliases {
		if normalizeWord(alias) == name {
			return m, true
		}
	}
	return 0, false
}

func (v Vocabulary) Weekday(w time.Weekday) string {
	return v.Weekdays[w]
}

// FormatHeader renders d the way the table writes day headers,
// e.g. "пн, 2 дек.".
func (v Vocabulary) FormatHeader(d Date) string {
	return fmt.Sprintf("%s, %d %s.", v.Weekday(d.Weekday()), d.Day, v.Months[d.Month-1])
}

func normalizeWord(s string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(s), "."))
}

// FindPerson resolves a free-form name against the tracked persons: an exact
// case-insensitive match first, then a unique prefix.
func FindPerson(persons []Person, name string) (Person, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}

	var candidates []Person
	for _, p := range persons {
		lower := strings.ToLower(string(p))
		if lower == name {
			return p, true
		}
		if strings.HasPrefix(lower, name) {
			candidates = append(candidates, p)
		}
	}

	if len(candidates) == 1 {
		return candidates[0], true
	}
	return "", false
}
