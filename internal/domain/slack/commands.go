package slack

import (
	"fmt"
	"strconv"
	"strings"
)

type CommandType string

const (
	CmdNow      CommandType = "now"
	CmdSchedule CommandType = "schedule"
	CmdMe       CommandType = "me"
	CmdWho      CommandType = "who"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdNow}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "now", "current":
		cmd.Type = CmdNow
	case "schedule", "sched":
		cmd.Type = CmdSchedule
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "me", "my":
		cmd.Type = CmdMe
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "who", "list", "ls":
		cmd.Type = CmdWho
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// SplitDays separates a trailing day count from the other arguments, so
// "schedule Дмитрий С. 14" yields ("Дмитрий С.", 14). days is 0 when no
// count was given.
func SplitDays(args []string) (rest string, days int, err error) {
	if len(args) == 0 {
		return "", 0, nil
	}

	last := args[len(args)-1]
	n, convErr := strconv.Atoi(last)
	if convErr != nil {
		return strings.Join(args, " "), 0, nil
	}
	if n < 1 {
		return "", 0, fmt.Errorf("day count must be a positive number, got %s", last)
	}

	return strings.Join(args[:len(args)-1], " "), n, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Duty:*
• ` + "`/duty`" + ` or ` + "`/duty now`" + ` - Who is on duty right now

*Schedules:*
• ` + "`/duty schedule <name> [days]`" + ` - A person's schedule from today (within the current month)
• ` + "`/duty me [days]`" + ` - Your own schedule, if your Slack account is linked in the roster

*Roster:*
• ` + "`/duty who`" + ` - Lists tracked persons
• ` + "`/duty help`" + ` - Shows this message`
}
