package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/bartolsthoorn/gocopt/copt"
)

// BannerCommand prints the solver banner.
type BannerCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	license bool
}

// NewBannerCommand returns the banner command.
func NewBannerCommand(rootCmd *RootCommand, app *kingpin.Application) *BannerCommand {
	c := &BannerCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("banner", "Print the solver banner.")
	c.Cmd.Flag("license", "Also create an environment and print its license message.").BoolVar(&c.license)

	return c
}

func (c BannerCommand) Name() string { return c.Cmd.FullCommand() }

func (c BannerCommand) Run(ctx context.Context) error {
	if !c.license && !c.rootCmd.Fake {
		b, err := copt.Banner()
		if err != nil {
			return fmt.Errorf("could not get banner: %w", err)
		}
		fmt.Fprintln(c.rootCmd.Stdout, b)
		return nil
	}

	profile, err := c.rootCmd.profile()
	if err != nil {
		return err
	}
	env, err := c.rootCmd.newEnv(profile)
	if err != nil {
		return err
	}
	defer env.Close()

	b, err := env.Banner()
	if err != nil {
		return fmt.Errorf("could not get banner: %w", err)
	}
	fmt.Fprintln(c.rootCmd.Stdout, b)

	if c.license {
		msg, err := env.LicenseMessage()
		if err != nil {
			return fmt.Errorf("could not get license message: %w", err)
		}
		fmt.Fprintln(c.rootCmd.Stdout, msg)
	}
	return nil
}
