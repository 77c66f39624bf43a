package slack

import (
	"fmt"
	"strings"

	"github.com/diegoclair/duty-roster-bot/internal/roster"
)

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape neutralizes the characters Slack reserves for links and mentions.
func Escape(text string) string {
	return escaper.Replace(text)
}

func FormatDuty(res roster.DutyResult) string {
	if res.Interval == nil || len(res.OnDuty) == 0 {
		return "Nobody is on duty right now."
	}

	names := make([]string, 0, len(res.OnDuty))
	for _, p := range res.OnDuty {
		names = append(names, "*"+Escape(string(p))+"*")
	}

	return fmt.Sprintf("On duty now (%s): %s", res.Interval.Window, strings.Join(names, ", "))
}

func FormatSchedule(s roster.Schedule, vocab roster.Vocabulary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Schedule for %s* (%s to %s):\n", Escape(string(s.Person)), shortDate(s.From), shortDate(s.To))

	for _, day := range s.Days {
		fmt.Fprintf(&b, "• %s %s: %s", vocab.Weekday(day.Weekday), shortDate(day.Date), day.Status)
		if len(day.DutyIntervals) > 0 {
			windows := make([]string, 0, len(day.DutyIntervals))
			for _, w := range day.DutyIntervals {
				windows = append(windows, w.String())
			}
			fmt.Fprintf(&b, ", on duty %s", strings.Join(windows, ", "))
		}
		b.WriteString("\n")
	}

	if s.Clamped {
		fmt.Fprintf(&b, "_Schedules stop at the end of the month (%s)._", shortDate(s.To))
	}

	return strings.TrimRight(b.String(), "\n")
}

func FormatPersons(persons []roster.Person) string {
	var b strings.Builder
	b.WriteString("*Tracked persons:*\n")
	for i, p := range persons {
		fmt.Fprintf(&b, "%d. %s\n", i+1, Escape(string(p)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func shortDate(d roster.Date) string {
	return fmt.Sprintf("%02d.%02d", d.Day, int(d.Month))
}
