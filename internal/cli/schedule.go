package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"slotcal/internal/config"
	"slotcal/internal/event"
	"slotcal/internal/extract"
	"slotcal/internal/schedule"
	"slotcal/internal/store"
)

// ScheduleOptions holds flags for the schedule command.
type ScheduleOptions struct {
	*RootOptions
	Database string
	NoPlan   bool
	Duration time.Duration

	// Extractor allows overriding the extraction gateway (for testing).
	// If nil, a live client is built from the environment.
	Extractor extract.Extractor
}

// NewScheduleCommand creates the schedule command.
func NewScheduleCommand(rootOpts *RootOptions) *cobra.Command {
	return NewScheduleCommandWithOptions(&ScheduleOptions{RootOptions: rootOpts})
}

// NewScheduleCommandWithOptions creates the schedule command with
// pre-configured options. Tests use this to inject a scripted extractor.
func NewScheduleCommandWithOptions(opts *ScheduleOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule <text>",
		Short: "Schedule an event described in free text",
		Long: `Schedule an event described in free text.

The text is sent to the extraction gateway, validated, checked for
conflicts, and booked if its slot is free. On a conflict, the next free
hour-aligned slot within four hours is suggested (but not booked).

Example:
  slotcal schedule "Alice and Bob are going to a science fair on 2025-09-19 17:00."
  slotcal schedule --no-plan "Team meeting with Carol on 2025-09-19 17:30."`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to calendar database (default from SLOTCAL_DB)")
	cmd.Flags().BoolVar(&opts.NoPlan, "no-plan", false, "do not search for an alternative slot on conflict")
	cmd.Flags().DurationVar(&opts.Duration, "duration", schedule.DefaultDuration, "global event duration")

	return cmd
}

func runSchedule(opts *ScheduleOptions, text string, cmd *cobra.Command) error {
	cfg := config.Load()
	if opts.Database == "" {
		opts.Database = cfg.Database
	}

	extractor := opts.Extractor
	if extractor == nil {
		client, err := extract.NewClient(cfg.APIKey,
			extract.WithBaseURL(cfg.BaseURL),
			extract.WithModel(cfg.Model),
		)
		if err != nil {
			return WrapExitError(ExitCommandError, "extraction gateway unavailable", err)
		}
		extractor = client
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open calendar database", err)
	}
	defer st.Close()

	scheduler := schedule.New(st, extractor, schedule.WithDuration(opts.Duration))

	out, err := scheduler.Schedule(cmd.Context(), text, !opts.NoPlan)
	if err != nil {
		return WrapExitError(ExitCommandError, "scheduling failed", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return reportOutcome(formatter, out)
}

// reportOutcome renders one schedule outcome and maps it to an exit code.
// Conflicts are normal outcomes (exit 0); a parse failure exits nonzero.
func reportOutcome(f *OutputFormatter, out schedule.Outcome) error {
	switch out.Kind {
	case schedule.KindScheduled:
		return f.Emit(
			fmt.Sprintf("Scheduled: %s", out.Event),
			scheduleResult{Outcome: out.Kind, Request: out.Request, Event: eventJSON(out.Event)},
		)

	case schedule.KindConflictSuggested:
		return f.Emit(
			fmt.Sprintf("Slot taken at %s. Suggested alternative: %s",
				out.RequestedStart.Format(event.TimeLayout),
				out.SuggestedStart.Format(event.TimeLayout)),
			scheduleResult{
				Outcome:        out.Kind,
				Request:        out.Request,
				RequestedStart: out.RequestedStart.Format(event.TimeLayout),
				SuggestedStart: out.SuggestedStart.Format(event.TimeLayout),
			},
		)

	case schedule.KindConflictUnresolved:
		return f.Emit(
			fmt.Sprintf("Could not add, slot taken at %s.", out.RequestedStart.Format(event.TimeLayout)),
			scheduleResult{
				Outcome:        out.Kind,
				Request:        out.Request,
				RequestedStart: out.RequestedStart.Format(event.TimeLayout),
			},
		)

	case schedule.KindParseFailure:
		if err := f.EmitError("Could not parse event."); err != nil {
			return err
		}
		return NewSilentExitError(ExitFailure)

	default:
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown outcome kind %q", out.Kind))
	}
}

// scheduleResult is the JSON payload for a schedule outcome.
type scheduleResult struct {
	Outcome        schedule.Kind `json:"outcome"`
	Request        string        `json:"request"`
	Event          *eventRecord  `json:"event,omitempty"`
	RequestedStart string        `json:"requested_start,omitempty"`
	SuggestedStart string        `json:"suggested_start,omitempty"`
}

// eventRecord is the JSON rendering of a stored event.
type eventRecord struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	StartTime    string   `json:"start_time"`
	Participants []string `json:"participants"`
}

func eventJSON(ev event.Event) *eventRecord {
	parts := ev.Participants()
	if parts == nil {
		parts = []string{}
	}
	return &eventRecord{
		ID:           ev.ID(),
		Name:         ev.Name(),
		StartTime:    ev.Start().Format(event.TimeLayout),
		Participants: parts,
	}
}
