package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeepies/leagues/internal/engine"
	"github.com/jeepies/leagues/internal/query"
	"github.com/jeepies/leagues/internal/queryir"
)

// ClauseExplanation describes how one clause was read.
type ClauseExplanation struct {
	Text       string   `json:"text"`
	Parsed     bool     `json:"parsed"`
	Condition  string   `json:"condition,omitempty"`
	Kind       string   `json:"kind,omitempty"` // "flag" or "comparison"
	Field      string   `json:"field,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
	Operator   string   `json:"operator,omitempty"`
	Literal    string   `json:"literal,omitempty"`
	Type       string   `json:"type,omitempty"` // "number" or "string"
}

// ExplainResult is the payload of the explain command.
type ExplainResult struct {
	Query    string              `json:"query"`
	Body     string              `json:"body"`
	Clauses  []ClauseExplanation `json:"clauses"`
	Warnings []string            `json:"warnings"`
}

// NewExplainCommand creates the explain command.
func NewExplainCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <text...>",
		Short: "Show how a query is read",
		Long: `Show how a query is split into clauses, which clauses parse, which
record members a field name may match, and anything suspicious about the
query as a whole.

Explain does not read the dataset or the database.

Examples:
  leagues explain 'pts > 20 and area = "Al Kharid"'
  leagues explain 'completed and !done'`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := explainQuery(strings.Join(args, " "))

			formatter := &OutputFormatter{
				Format:    rootOpts.Config.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Config.Verbose,
			}
			if formatter.IsJSON() {
				return formatter.Success(result)
			}
			writeExplainText(formatter.Writer, result)
			return nil
		},
	}

	return cmd
}

// explainQuery runs the parser one clause at a time and lints the
// conditions that survive.
func explainQuery(text string) ExplainResult {
	body := query.StripPrefix(text)
	result := ExplainResult{
		Query:   text,
		Body:    body,
		Clauses: []ClauseExplanation{},
	}

	conds := []queryir.Condition{}
	for _, clause := range query.SplitClauses(body) {
		expl := ClauseExplanation{Text: strings.TrimSpace(clause)}

		cond, ok := query.ParseCondition(clause)
		if ok {
			conds = append(conds, cond)
			expl.Parsed = true
			expl.Condition = cond.String()

			switch c := cond.(type) {
			case queryir.Flag:
				expl.Kind = "flag"
				expl.Field = c.Field
			case queryir.Binary:
				expl.Kind = "comparison"
				expl.Field = c.Field
				expl.Operator = c.Op.String()
				expl.Literal = queryir.FormatLiteral(c.Value)
				expl.Type = literalType(c.Value)
				if !queryir.IsCompletedField(c.Field) {
					expl.Candidates = engine.Candidates(c.Field)
				}
			}
		}
		result.Clauses = append(result.Clauses, expl)
	}

	result.Warnings = queryir.Validate(conds).Warnings
	return result
}

func literalType(lit queryir.Literal) string {
	switch lit.(type) {
	case queryir.Number:
		return "number"
	default:
		return "string"
	}
}

func writeExplainText(w io.Writer, result ExplainResult) {
	fmt.Fprintf(w, "Query: %s\n", result.Query)
	if len(result.Clauses) == 0 {
		fmt.Fprintln(w, "No clauses: every task matches.")
	}

	for i, c := range result.Clauses {
		fmt.Fprintf(w, "\nClause %d: %s\n", i+1, c.Text)
		if !c.Parsed {
			fmt.Fprintln(w, "  ignored: not a condition")
			continue
		}
		switch c.Kind {
		case "flag":
			fmt.Fprintf(w, "  flag: %s (stored completion state)\n", c.Condition)
		default:
			if len(c.Candidates) > 0 {
				fmt.Fprintf(w, "  field: %s (tries %s)\n", c.Field, strings.Join(c.Candidates, ", "))
			} else {
				fmt.Fprintf(w, "  field: %s (stored completion state)\n", c.Field)
			}
			fmt.Fprintf(w, "  operator: %s\n", c.Operator)
			fmt.Fprintf(w, "  value: %s (%s)\n", c.Literal, c.Type)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}
