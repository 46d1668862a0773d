package commands

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/alecthomas/kingpin/v2"

	"github.com/bartolsthoorn/gocopt/copt"
)

// ParamsCommand prints solver parameters with their defaults and ranges.
type ParamsCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	names []string
}

// NewParamsCommand returns the params command.
func NewParamsCommand(rootCmd *RootCommand, app *kingpin.Application) *ParamsCommand {
	c := &ParamsCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("params", "List solver parameters, after applying the profile.")
	c.Cmd.Arg("names", "Parameter names (default: all).").StringsVar(&c.names)

	return c
}

func (c ParamsCommand) Name() string { return c.Cmd.FullCommand() }

type paramRow struct {
	name, kind                string
	current, def, lower, high string
}

func (c ParamsCommand) Run(ctx context.Context) error {
	profile, err := c.rootCmd.profile()
	if err != nil {
		return err
	}
	m, err := c.rootCmd.newModel(profile)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := profile.Apply(m); err != nil {
		return err
	}

	ints, doubles, err := c.selected()
	if err != nil {
		return err
	}

	var rows []paramRow
	for _, p := range ints {
		info, err := m.IntParamInfo(p)
		if err != nil {
			return fmt.Errorf("could not read %s: %w", p, err)
		}
		rows = append(rows, paramRow{
			name: info.Name, kind: "int",
			current: strconv.Itoa(info.Current), def: strconv.Itoa(info.Default),
			lower: strconv.Itoa(info.Min), high: strconv.Itoa(info.Max),
		})
	}
	for _, p := range doubles {
		info, err := m.DoubleParamInfo(p)
		if err != nil {
			return fmt.Errorf("could not read %s: %w", p, err)
		}
		rows = append(rows, paramRow{
			name: info.Name, kind: "double",
			current: formatFloat(info.Current), def: formatFloat(info.Default),
			lower: formatFloat(info.Min), high: formatFloat(info.Max),
		})
	}

	tw := tabwriter.NewWriter(c.rootCmd.Stdout, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "NAME\tTYPE\tCURRENT\tDEFAULT\tMIN\tMAX")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.name, r.kind, r.current, r.def, r.lower, r.high)
	}
	return nil
}

// selected resolves the requested names, keeping the command line order
// within each type.
func (c ParamsCommand) selected() ([]copt.IntParam, []copt.DoubleParam, error) {
	if len(c.names) == 0 {
		return copt.IntParams(), copt.DoubleParams(), nil
	}

	var (
		ints    []copt.IntParam
		doubles []copt.DoubleParam
	)
	for _, name := range c.names {
		if p, ok := copt.LookupIntParam(name); ok {
			ints = append(ints, p)
			continue
		}
		if p, ok := copt.LookupDoubleParam(name); ok {
			doubles = append(doubles, p)
			continue
		}
		return nil, nil, fmt.Errorf("unknown parameter %q", name)
	}
	return ints, doubles, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
