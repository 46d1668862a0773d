package commands

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/bartolsthoorn/gocopt/copt"
	"github.com/bartolsthoorn/gocopt/internal/history"
)

// SolveCommand reads a model file, solves it and records the run.
type SolveCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	path         string
	params       map[string]string
	timeLimit    float64
	lpOnly       bool
	writePath    string
	solutionPath string
	solverLog    bool
}

// NewSolveCommand returns the solve command.
func NewSolveCommand(rootCmd *RootCommand, app *kingpin.Application) *SolveCommand {
	c := &SolveCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("solve", "Solve an .mps or .lp model.")
	c.Cmd.Arg("file", "Model file.").Required().ExistingFileVar(&c.path)
	c.Cmd.Flag("param", "Solver parameter as Name=Value, applied after the profile (repeatable).").StringMapVar(&c.params)
	c.Cmd.Flag("time-limit", "Time limit in seconds (0 keeps the solver default).").Float64Var(&c.timeLimit)
	c.Cmd.Flag("lp-only", "Solve only the LP relaxation.").BoolVar(&c.lpOnly)
	c.Cmd.Flag("write", "Write the model, before solving, to this .mps or .lp file.").StringVar(&c.writePath)
	c.Cmd.Flag("solution", "Write the solution to this file.").StringVar(&c.solutionPath)
	c.Cmd.Flag("solver-log", "Print the solver log on stderr.").BoolVar(&c.solverLog)

	return c
}

func (c SolveCommand) Name() string { return c.Cmd.FullCommand() }

func (c SolveCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	profile, err := c.rootCmd.profile()
	if err != nil {
		return err
	}
	if err := mergeParams(profile, c.params); err != nil {
		return err
	}

	repo, closeRepo, err := c.rootCmd.historyRepository(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	m, err := c.rootCmd.newModel(profile)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Read(c.path); err != nil {
		return fmt.Errorf("could not read model: %w", err)
	}
	logger.Infof("Read %s: %d variables, %d constraints", c.path, m.NumVars(), m.NumConstrs())

	if c.writePath != "" {
		if err := m.Write(c.writePath); err != nil {
			return fmt.Errorf("could not write model: %w", err)
		}
	}

	opts := []copt.SolveOption{
		copt.WithProfile(profile),
		copt.WithLogging(c.solverLog),
	}
	if c.timeLimit > 0 {
		opts = append(opts, copt.WithTimeLimit(c.timeLimit))
	}
	if c.lpOnly {
		opts = append(opts, copt.WithLpOnly())
	}
	if c.solverLog {
		stderr := c.rootCmd.Stderr
		opts = append(opts, copt.WithLogCallback(func(msg string) { fmt.Fprintln(stderr, msg) }))
	}

	// A termination signal cancels ctx, which interrupts the solve.
	run := history.Run{
		Source:     c.path,
		NumVars:    m.NumVars(),
		NumConstrs: m.NumConstrs(),
		CreatedAt:  time.Now().UTC(),
	}
	run.ID = history.NewRunID(run.CreatedAt)

	sol, solveErr := m.Solve(ctx, opts...)
	if sol == nil {
		run.Status = copt.StatusUnstarted.String()
		run.Error = solveErr.Error()
		return errors.Join(fmt.Errorf("could not solve: %w", solveErr), c.record(ctx, repo, run))
	}
	run.Status = sol.Status.String()
	run.MIP = sol.MIP
	run.HasSolution = sol.HasSolution()
	run.Objective = sol.Objective
	run.Elapsed = sol.Elapsed
	if solveErr != nil {
		run.Error = solveErr.Error()
	}

	if c.solutionPath != "" && sol.HasSolution() {
		if err := m.WriteFile(copt.FormatSol, c.solutionPath); err != nil {
			return errors.Join(fmt.Errorf("could not write solution: %w", err), c.record(ctx, repo, run))
		}
	}

	c.print(run)
	if err := c.record(ctx, repo, run); err != nil {
		return err
	}
	return solveErr
}

// record stores run. Interrupted solves are recorded too, so ctx may already
// be done.
func (c SolveCommand) record(ctx context.Context, repo history.Repository, run history.Run) error {
	if err := repo.CreateRun(context.WithoutCancel(ctx), run); err != nil {
		return fmt.Errorf("could not record run: %w", err)
	}
	c.rootCmd.Logger.Debugf("Recorded run %s", run.ID)
	return nil
}

func (c SolveCommand) print(run history.Run) {
	w := c.rootCmd.Stdout
	fmt.Fprintf(w, "Status:      %s\n", run.Status)
	if run.HasSolution {
		fmt.Fprintf(w, "Objective:   %s\n", strconv.FormatFloat(run.Objective, 'g', -1, 64))
	}
	fmt.Fprintf(w, "Variables:   %d\n", run.NumVars)
	fmt.Fprintf(w, "Constraints: %d\n", run.NumConstrs)
	fmt.Fprintf(w, "Elapsed:     %s\n", run.Elapsed)
	fmt.Fprintf(w, "Run:         %s\n", run.ID)
}

// mergeParams sets Name=Value pairs on the profile, overriding its values.
func mergeParams(p *copt.Profile, params map[string]string) error {
	if len(params) == 0 {
		return nil
	}
	if p.Params == nil {
		p.Params = map[string]float64{}
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v, err := strconv.ParseFloat(params[name], 64)
		if err != nil {
			return fmt.Errorf("parameter %s: %w", name, err)
		}
		p.Params[name] = v
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}
