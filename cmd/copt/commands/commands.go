package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/bartolsthoorn/gocopt/copt"
	"github.com/bartolsthoorn/gocopt/internal/history"
	"github.com/bartolsthoorn/gocopt/internal/history/memory"
	"github.com/bartolsthoorn/gocopt/internal/history/sqlite"
	"github.com/bartolsthoorn/gocopt/internal/log"
	"github.com/bartolsthoorn/gocopt/internal/native/fake"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug       bool
	NoLog       bool
	NoColor     bool
	LoggerType  string
	LicenseDir  string
	ProfilePath string
	HistoryDB   string
	NoHistory   bool
	Fake        bool

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)
	app.Flag("license-dir", "Directory holding the COPT license files.").StringVar(&c.LicenseDir)
	app.Flag("profile", "YAML profile with environment settings and parameters.").StringVar(&c.ProfilePath)

	defaultDBPath := filepath.Join(homedir.HomeDir(), ".copt", "history.db")
	app.Flag("history-db", "Path to the SQLite solve history.").Envar("COPT_HISTORY_DB").Default(defaultDBPath).StringVar(&c.HistoryDB)
	app.Flag("no-history", "Do not record solve runs.").BoolVar(&c.NoHistory)
	app.Flag("fake", "Use the in-memory fake solver instead of the native library.").Hidden().BoolVar(&c.Fake)

	return c
}

// profile returns the configured profile, or an empty one.
func (r *RootCommand) profile() (*copt.Profile, error) {
	if r.ProfilePath == "" {
		return &copt.Profile{}, nil
	}
	p, err := copt.LoadProfileFile(r.ProfilePath)
	if err != nil {
		return nil, fmt.Errorf("could not load profile: %w", err)
	}
	return p, nil
}

// newEnv creates a solver environment from the profile and the global flags.
func (r *RootCommand) newEnv(p *copt.Profile) (*copt.Env, error) {
	cfg := p.EnvConfig()
	if r.LicenseDir != "" {
		cfg.LicenseDir = r.LicenseDir
	}
	cfg.Logger = r.Logger
	if r.Fake {
		cfg.Backend = fake.New(fake.Config{})
	}

	env, err := copt.NewEnvWithConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create environment: %w", err)
	}
	return env, nil
}

// newModel creates an environment and an empty model on it. Closing the
// model releases the environment.
func (r *RootCommand) newModel(p *copt.Profile) (*copt.Model, error) {
	env, err := r.newEnv(p)
	if err != nil {
		return nil, err
	}
	defer env.Close()

	m, err := copt.NewModel(env)
	if err != nil {
		return nil, fmt.Errorf("could not create model: %w", err)
	}
	return m, nil
}

// historyRepository returns the run repository and its closer.
func (r *RootCommand) historyRepository(ctx context.Context) (history.Repository, func() error, error) {
	if r.NoHistory {
		repo, err := memory.NewRepository(memory.RepositoryConfig{Logger: r.Logger})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create repository: %w", err)
		}
		return repo, func() error { return nil }, nil
	}

	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: r.HistoryDB,
		Logger: r.Logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not create repository: %w", err)
	}
	return repo, repo.Close, nil
}
