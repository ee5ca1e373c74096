package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"slotcal/internal/config"
	"slotcal/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Database string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scheduled events sorted by start time",
		Long: `List all scheduled events, sorted ascending by start time.

Example:
  slotcal list
  slotcal list --db ./calendar.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to calendar database (default from SLOTCAL_DB)")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	if opts.Database == "" {
		opts.Database = config.Load().Database
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open calendar database", err)
	}
	defer st.Close()

	events, err := st.ListSorted(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read calendar", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	records := make([]*eventRecord, len(events))
	lines := make([]string, len(events))
	for i, ev := range events {
		records[i] = eventJSON(ev)
		lines[i] = fmt.Sprintf("- %s", ev)
	}

	if len(events) == 0 {
		return formatter.Emit("No events scheduled.", records)
	}
	return formatter.Emit(strings.Join(lines, "\n"), records)
}
