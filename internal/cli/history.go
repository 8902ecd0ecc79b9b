package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeepies/leagues/internal/store"
)

// HistoryEntry is a toggle event with the task label when the task is
// still in the dataset.
type HistoryEntry struct {
	store.ToggleEvent
	Label string `json:"label"`
}

// labelMissing is shown for events whose task is no longer loaded.
const labelMissing = "(not in dataset)"

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [id]",
		Short: "Show completion changes",
		Long: `Show completion changes in the order they were made.

With an id (or unique id prefix), only that task's changes are shown. An
id that no longer matches a loaded task is looked up as given, so history
survives edits to the dataset.

Examples:
  leagues history
  leagues history 856d0a67 --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), rootOpts, cmd, args)
		},
	}

	return cmd
}

func runHistory(ctx context.Context, opts *RootOptions, cmd *cobra.Command, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	sess, err := openSession(ctx, opts)
	if err != nil {
		return err
	}
	defer sess.Close()

	itemID := ""
	if len(args) == 1 {
		item, refErr := resolveItem(sess.items, args[0])
		switch {
		case refErr == nil:
			itemID = item.ID
		case refErr.code == ErrCodeUnknownItem:
			itemID = refErr.ref
		default:
			return WrapExitError(ExitFailure, "cannot show history", refErr)
		}
	}

	events, err := sess.store.History(ctx, itemID)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read history", err)
	}

	labels := sess.labels()
	entries := make([]HistoryEntry, 0, len(events))
	for _, evt := range events {
		label, ok := labels[evt.ItemID]
		if !ok {
			label = labelMissing
		}
		entries = append(entries, HistoryEntry{ToggleEvent: evt, Label: label})
	}

	formatter := &OutputFormatter{
		Format:    opts.Config.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Config.Verbose,
	}
	if formatter.IsJSON() {
		return formatter.Success(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(formatter.Writer, "No completion changes recorded.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(formatter.Writer, "%4d  %s %s  %s\n", e.Seq, checkbox(e.Completed), e.Label, e.ItemID)
	}
	return nil
}
