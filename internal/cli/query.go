package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeepies/leagues/internal/engine"
	"github.com/jeepies/leagues/internal/query"
	"github.com/jeepies/leagues/internal/queryir"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	Last bool
}

// QueryResult is the payload of the query command.
type QueryResult struct {
	Query      string   `json:"query"`
	Conditions []string `json:"conditions"`
	Total      int      `json:"total"`
	Matched    int      `json:"matched"`
	Groups     []Group  `json:"groups"`
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query [text...]",
		Short: "List tasks matching a filter",
		Long: `List tasks matching a filter query, grouped by area.

A query is a list of clauses joined with "and", optionally led by "where"
or "select * where". A clause is a flag (completed, done, !completed) or a
comparison such as pts > 20 or area = 'Al Kharid'. Clauses that do not
parse are ignored, and an empty query lists every task.

Query text given on the command line is remembered; --last reuses it.

Examples:
  leagues query
  leagues query 'pts >= 50 and !completed'
  leagues query where area = Misthalin
  leagues query --last --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context(), opts, cmd, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Last, "last", false, "reuse the last query when no text is given")

	return cmd
}

func runQuery(ctx context.Context, opts *QueryOptions, cmd *cobra.Command, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	sess, err := openSession(ctx, opts.RootOptions)
	if err != nil {
		return err
	}
	defer sess.Close()

	text := strings.Join(args, " ")
	switch {
	case len(args) > 0:
		if err := sess.store.SaveLastQuery(ctx, text); err != nil {
			slog.Warn("could not remember query", "error", err)
		}
	case opts.Last:
		text, err = sess.store.LastQuery(ctx)
		if err != nil {
			slog.Warn("could not read last query", "error", err)
			text = ""
		}
	}

	conds := query.Parse(text)
	slog.Debug("query parsed", "text", text, "conditions", queryir.Format(conds))

	matched := engine.Filter(sess.items, conds, sess.completions)
	groups, err := groupItems(matched, sess.completions, opts.Config.Locale)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to group results", err)
	}

	result := QueryResult{
		Query:      text,
		Conditions: make([]string, 0, len(conds)),
		Total:      len(sess.items),
		Matched:    len(matched),
		Groups:     groups,
	}
	for _, c := range conds {
		result.Conditions = append(result.Conditions, c.String())
	}

	formatter := &OutputFormatter{
		Format:    opts.Config.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Config.Verbose,
	}
	formatter.VerboseLog("Matched %d of %d tasks from %s", result.Matched, result.Total, opts.Config.Dataset)
	if formatter.IsJSON() {
		return formatter.Success(result)
	}

	if result.Total == 0 {
		fmt.Fprintf(formatter.Writer, "No data: no tasks loaded from %s\n", opts.Config.Dataset)
		return nil
	}
	writeQueryText(formatter.Writer, result)
	return nil
}

// writeQueryText renders grouped results as a checklist.
func writeQueryText(w io.Writer, result QueryResult) {
	if len(result.Conditions) > 0 {
		fmt.Fprintf(w, "Filter: %s\n\n", strings.Join(result.Conditions, " and "))
	}

	if result.Matched == 0 {
		fmt.Fprintln(w, "No tasks match.")
	}
	for i, g := range result.Groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", g.Label, len(g.Items))
		for _, item := range g.Items {
			writeItemLine(w, "  ", item)
		}
	}

	fmt.Fprintf(w, "\n%d of %d tasks\n", result.Matched, result.Total)
}
