package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/balkashynov/wellbeing/internal/catalog"
	"github.com/balkashynov/wellbeing/internal/config"
	"github.com/balkashynov/wellbeing/internal/logging"
	"github.com/balkashynov/wellbeing/internal/models"
	"github.com/balkashynov/wellbeing/internal/session"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries what every command needs once flags are parsed
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *zap.Logger
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "wellbeing",
		Short: "WellBeing360 employee wellness dashboard",
		Long: `wellbeing is a terminal wellness dashboard.
Log mood and stress check-ins, browse wellness resources, request coaching
sessions and, as an HR manager, review department metrics.

Running it without a command opens the interactive dashboard. Nothing is
stored on disk: check-ins live only as long as the session that made them.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
		RunE:              a.runDashboard,
	}

	defaultConfig, err := config.DefaultPath()
	if err != nil {
		defaultConfig = ""
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", defaultConfig, "Config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newDashboardCmd(a))
	rootCmd.AddCommand(newCheckinCmd(a))
	rootCmd.AddCommand(newRecommendCmd())
	rootCmd.AddCommand(newResourcesCmd(a))
	rootCmd.AddCommand(newCoachesCmd(a))
	rootCmd.AddCommand(newOverviewCmd(a))
	rootCmd.SetHelpCommand(newHelpCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load reads config and builds the logger before any command runs
func (a *app) load(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	a.logger = logger
	return nil
}

// newSession opens a session over the configured catalog
func (a *app) newSession(logger *zap.Logger, opts ...session.Option) (*session.Session, error) {
	cat, err := catalog.Load(a.cfg.SeedPath)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	opts = append([]session.Option{session.WithLogger(logger)}, opts...)
	return session.New(cat, opts...)
}

// newUserSession opens a session already logged in as the OS user
func (a *app) newUserSession(username string, role models.Role) (*session.Session, error) {
	if username == "" {
		username = currentUser()
	}
	return a.newSession(a.logger, session.AsUser(username, role))
}

func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "employee"
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wellbeing %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
