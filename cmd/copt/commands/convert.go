package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
)

// ConvertCommand rewrites a model file in the format of another suffix.
type ConvertCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	in  string
	out string
}

// NewConvertCommand returns the convert command.
func NewConvertCommand(rootCmd *RootCommand, app *kingpin.Application) *ConvertCommand {
	c := &ConvertCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("convert", "Convert a model between .mps and .lp.")
	c.Cmd.Arg("in", "Input model file.").Required().ExistingFileVar(&c.in)
	c.Cmd.Arg("out", "Output model file.").Required().StringVar(&c.out)

	return c
}

func (c ConvertCommand) Name() string { return c.Cmd.FullCommand() }

func (c ConvertCommand) Run(ctx context.Context) error {
	profile, err := c.rootCmd.profile()
	if err != nil {
		return err
	}
	m, err := c.rootCmd.newModel(profile)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Read(c.in); err != nil {
		return fmt.Errorf("could not read model: %w", err)
	}
	if err := m.Write(c.out); err != nil {
		return fmt.Errorf("could not write model: %w", err)
	}

	c.rootCmd.Logger.Infof("Converted %s to %s", c.in, c.out)
	return nil
}
