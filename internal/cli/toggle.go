package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeepies/leagues/internal/ir"
	"github.com/jeepies/leagues/internal/store"
)

// ToggleOptions holds flags for the toggle command.
type ToggleOptions struct {
	*RootOptions
	Done   bool // set completed instead of flipping
	Undone bool // clear completed instead of flipping
}

// ToggleResult describes one changed item.
type ToggleResult struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Seq       int64  `json:"seq"`
}

// NewToggleCommand creates the toggle command.
func NewToggleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ToggleOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "toggle <id>...",
		Short: "Flip completion for tasks",
		Long: `Flip the completion state of one or more tasks.

Each id may be a full task id or any prefix that matches exactly one
loaded task. Every id is resolved before anything is written.

Examples:
  leagues toggle 856d0a67
  leagues toggle 856d 516a
  leagues toggle --done 856d0a67`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd.Context(), opts, cmd, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Done, "done", false, "mark tasks completed")
	cmd.Flags().BoolVar(&opts.Undone, "undone", false, "mark tasks not completed")
	cmd.MarkFlagsMutuallyExclusive("done", "undone")

	return cmd
}

func runToggle(ctx context.Context, opts *ToggleOptions, cmd *cobra.Command, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	formatter := &OutputFormatter{
		Format:    opts.Config.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Config.Verbose,
	}

	sess, err := openSession(ctx, opts.RootOptions)
	if err != nil {
		return err
	}
	defer sess.Close()

	targets := make([]ir.Item, 0, len(args))
	for _, ref := range args {
		item, err := resolveItem(sess.items, ref)
		if err != nil {
			if formatter.IsJSON() {
				_ = formatter.Error(err.code, err.Error(), map[string]any{"id": ref, "matches": err.matches})
			}
			return WrapExitError(ExitFailure, "cannot toggle", err)
		}
		targets = append(targets, item)
	}

	results := make([]ToggleResult, 0, len(targets))
	for _, item := range targets {
		evt, err := applyToggle(ctx, sess.store, opts, item.ID)
		if err != nil {
			if formatter.IsJSON() {
				_ = formatter.Error(ErrCodeStore, err.Error(), map[string]string{"id": item.ID})
			}
			return WrapExitError(ExitFailure, "failed to save completion", err)
		}
		slog.Debug("toggled", "id", item.ID, "completed", evt.Completed, "seq", evt.Seq)
		results = append(results, ToggleResult{
			ID:        item.ID,
			Label:     item.Label,
			Completed: evt.Completed,
			Seq:       evt.Seq,
		})
	}

	if formatter.IsJSON() {
		return formatter.Success(results)
	}
	for _, r := range results {
		writeItemLine(formatter.Writer, "", ItemView{ID: r.ID, Label: r.Label, Completed: r.Completed})
	}
	return nil
}

func applyToggle(ctx context.Context, st *store.Store, opts *ToggleOptions, id string) (store.ToggleEvent, error) {
	switch {
	case opts.Done:
		return st.SetCompleted(ctx, id, true)
	case opts.Undone:
		return st.SetCompleted(ctx, id, false)
	default:
		return st.Toggle(ctx, id)
	}
}

// itemRefError reports an id that matched no item or more than one.
type itemRefError struct {
	code    string
	ref     string
	matches []string
}

func (e *itemRefError) Error() string {
	if e.code == ErrCodeAmbiguousItem {
		return fmt.Sprintf("id %q is ambiguous: matches %s", e.ref, strings.Join(e.matches, ", "))
	}
	return fmt.Sprintf("no task with id %q", e.ref)
}

// resolveItem finds the item named by ref: an exact id first, then a
// unique id prefix. Case is ignored since ids are lowercase hex.
func resolveItem(items []ir.Item, ref string) (ir.Item, *itemRefError) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return ir.Item{}, &itemRefError{code: ErrCodeUnknownItem, ref: ref}
	}

	for _, item := range items {
		if item.ID == ref {
			return item, nil
		}
	}

	var (
		found   ir.Item
		matches []string
	)
	seen := make(map[string]bool)
	for _, item := range items {
		if !strings.HasPrefix(item.ID, ref) || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		found = item
		matches = append(matches, item.ID)
	}

	switch len(matches) {
	case 0:
		return ir.Item{}, &itemRefError{code: ErrCodeUnknownItem, ref: ref}
	case 1:
		return found, nil
	default:
		return ir.Item{}, &itemRefError{code: ErrCodeAmbiguousItem, ref: ref, matches: matches}
	}
}
