package commands

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kingpin/v2"
)

// HistoryCommand lists recorded solve runs.
type HistoryCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	limit int
}

// NewHistoryCommand returns the history command.
func NewHistoryCommand(rootCmd *RootCommand, app *kingpin.Application) *HistoryCommand {
	c := &HistoryCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("history", "List recent solve runs.")
	c.Cmd.Flag("limit", "Maximum number of runs (0 for all).").Default("20").IntVar(&c.limit)

	return c
}

func (c HistoryCommand) Name() string { return c.Cmd.FullCommand() }

func (c HistoryCommand) Run(ctx context.Context) error {
	repo, closeRepo, err := c.rootCmd.historyRepository(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	runs, err := repo.ListRuns(ctx, c.limit)
	if err != nil {
		return fmt.Errorf("could not list runs: %w", err)
	}
	if len(runs) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(c.rootCmd.Stdout, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tSOURCE\tSTATUS\tOBJECTIVE\tELAPSED\tCREATED")
	for _, r := range runs {
		obj := "-"
		if r.HasSolution {
			obj = strconv.FormatFloat(r.Objective, 'g', -1, 64)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Source, r.Status, obj, r.Elapsed.Round(time.Millisecond), r.CreatedAt.Local().Format(time.DateTime))
	}
	return nil
}
