package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/diegoclair/duty-roster-bot/internal/domain/contract"
	"github.com/diegoclair/duty-roster-bot/internal/domain/service"
	slackcmd "github.com/diegoclair/duty-roster-bot/internal/domain/slack"
	"github.com/diegoclair/duty-roster-bot/internal/roster"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

// Slack drops slash command responses that take longer than three seconds.
const commandTimeout = 2500 * time.Millisecond

type SlackHandler struct {
	dutyService   contract.DutyService
	signingSecret string
	scheduleDays  int
	log           logrus.FieldLogger
}

func New(dutyService contract.DutyService, signingSecret string, scheduleDays int, log logrus.FieldLogger) *SlackHandler {
	if scheduleDays < 1 {
		scheduleDays = 7
	}
	return &SlackHandler{
		dutyService:   dutyService,
		signingSecret: signingSecret,
		scheduleDays:  scheduleDays,
		log:           log,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.WithError(err).Warn("Rejected slash command with invalid signature")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, fmt.Sprintf("%s. Try `%s help`", err.Error(), s.Command))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), commandTimeout)
	defer cancel()

	response := h.handleCommand(ctx, cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.WithError(err).Error("Failed to write slash command response")
	}
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdNow:
		return h.handleNow(ctx)
	case slackcmd.CmdSchedule:
		return h.handleSchedule(ctx, cmd)
	case slackcmd.CmdMe:
		return h.handleMe(ctx, cmd, slashCmd)
	case slackcmd.CmdWho:
		return h.handleWho()
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleNow(ctx context.Context) *slack.Msg {
	res, err := h.dutyService.CurrentDuty(ctx)
	if err != nil {
		if errors.Is(err, roster.ErrNoData) {
			return h.createErrorResponse("The duty table has no entry for today")
		}
		h.log.WithError(err).Error("Failed to resolve current duty")
		return h.createErrorResponse("Could not load the duty table, please try again later")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         slackcmd.FormatDuty(res),
	}
}

func (h *SlackHandler) handleSchedule(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	name, days, err := slackcmd.SplitDays(cmd.Args)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}
	if name == "" {
		return h.createErrorResponse("Please name a person: `/duty schedule <name> [days]`")
	}
	if days == 0 {
		days = h.scheduleDays
	}

	schedule, err := h.dutyService.PersonSchedule(ctx, name, days)
	return h.scheduleResponse(schedule, err)
}

func (h *SlackHandler) handleMe(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	_, days, err := slackcmd.SplitDays(cmd.Args)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}
	if days == 0 {
		days = h.scheduleDays
	}

	schedule, err := h.dutyService.SlackUserSchedule(ctx, slashCmd.UserID, days)
	return h.scheduleResponse(schedule, err)
}

func (h *SlackHandler) scheduleResponse(schedule roster.Schedule, err error) *slack.Msg {
	switch {
	case err == nil:
	case errors.Is(err, roster.ErrPersonNotFound):
		return h.createErrorResponse(fmt.Sprintf("%s. Use `/duty who` to list tracked persons", err.Error()))
	case errors.Is(err, service.ErrUnlinkedSlackUser):
		return h.createErrorResponse("Your Slack account is not linked to anyone in the roster. Ask an admin to add your slack_id, or use `/duty schedule <name>`")
	case errors.Is(err, roster.ErrInvalidDayCount):
		return h.createErrorResponse(err.Error())
	case errors.Is(err, roster.ErrNoSchedule):
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("No schedule entries for %s from %s to %s.", slackcmd.Escape(string(schedule.Person)), schedule.From, schedule.To),
		}
	default:
		h.log.WithError(err).Error("Failed to build schedule")
		return h.createErrorResponse("Could not load the duty table, please try again later")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.FormatSchedule(schedule, h.dutyService.Vocabulary()),
	}
}

func (h *SlackHandler) handleWho() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.FormatPersons(h.dutyService.Persons()),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}
