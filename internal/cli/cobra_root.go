package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"timeclock/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{
		app: app,
	}

	root.cmd = &cobra.Command{
		Use:   "timeclock",
		Short: "A command-line time tracking application",
		Long: `Timeclock is a command-line application for recording worked time.

Time can be recorded three ways: a live timer, a typed duration on a date,
or an explicit clock range on a date. At most one timer runs at a time.

EXAMPLES:
  timeclock start "Reviewing pull requests"       # Start a timer
  timeclock status                                # Show the running timer
  timeclock stop                                  # Stop the timer
  timeclock log --duration 1h30m "Standup prep"   # Log a duration for today
  timeclock log --date yesterday --duration 2.5   # Log decimal hours
  timeclock log --date 2026-08-28 --from 09:00 --to 11:30 "Planning"
  timeclock list --since "last monday"            # List this week's entries
  timeclock edit 12 --from 09:00 --to 10:00       # Fix an entry's times
  timeclock delete 12                             # Remove an entry

DURATION FORMATS:
  1:30        hours:minutes
  1.5         decimal hours
  1h 30m      compound units (h, m, s; "90m", "2hrs" also work)

CONFIGURATION:
  Settings cascade: command-line flags > environment variables >
  ~/.config/timeclock/config.toml > defaults

    TC_OWNER                     Owner identifier (default: $USER)
    TC_CONFIG                    Config file path
    TC_DB_DIR                    Database directory (default: ~/.timeclock)
    TC_DB_FILENAME               Database filename (default: timeclock.db)
    TC_ENTRY_BACKDATE_END_HOUR   End-time anchor for backdated durations (default: 17)
    TC_APP_TIMEOUT               Command timeout (default: 60s)
    TC_DEBUG                     Enable debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("owner", "", "Owner identifier (overrides TC_OWNER)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TC_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	startHandler := NewStartCommand(r.app)
	startCmd := &cobra.Command{
		Use:   "start [description]",
		Short: "Start a timer",
		Long:  "Start a timer. Fails if a timer is already running; stop it first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()
			return startHandler.Execute(ctx, args)
		},
	}
	addEntryFlags(startCmd, &startHandler.Flags, r.app.config)

	stopHandler := NewStopCommand(r.app)
	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running timer",
		Long:  "Stop the running timer and store the completed entry. Stopping with no timer running is not an error.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()
			return stopHandler.Execute(ctx, args)
		},
	}

	statusHandler := NewStatusCommand(r.app)
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the running timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()
			return statusHandler.Execute(ctx, args)
		},
	}

	logHandler := NewLogCommand(r.app)
	logCmd := &cobra.Command{
		Use:   "log [description]",
		Short: "Record worked time",
		Long: `Record worked time in one of three modes.

With no time flags, a timer is started (same as "timeclock start").
With --duration, the given amount of time is logged on --date (default today).
With --from and --to, the explicit clock range is logged on --date.

Durations logged for a past date end at the configured backdate hour
(default 17:00) on that date.

Examples:
  timeclock log "Pairing session"
  timeclock log --duration 1:30 "Code review"
  timeclock log --date yesterday --duration 45m
  timeclock log --date 2026-08-28 --from 09:00 --to 11:30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()
			return logHandler.Execute(ctx, args)
		},
	}
	logCmd.Flags().StringVar(&logHandler.Date, "date", "", "Date to log on (ISO or natural language)")
	logCmd.Flags().StringVar(&logHandler.Duration, "duration", "", "Duration to log (1:30, 1.5, 1h 30m, 90m)")
	logCmd.Flags().StringVar(&logHandler.From, "from", "", "Start clock time (HH:MM)")
	logCmd.Flags().StringVar(&logHandler.To, "to", "", "End clock time (HH:MM)")
	addEntryFlags(logCmd, &logHandler.Flags, r.app.config)

	listHandler := NewListCommand(r.app)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List time entries",
		Long: `List time entries, most recent first.

Examples:
  timeclock list
  timeclock list --since "last monday"
  timeclock list --project acme --running`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()
			return listHandler.Execute(ctx, args)
		},
	}
	listCmd.Flags().StringVar(&listHandler.Project, "project", "", "Filter by project")
	listCmd.Flags().StringVar(&listHandler.Issue, "issue", "", "Filter by issue")
	listCmd.Flags().StringVar(&listHandler.Since, "since", "", "Earliest date to include")
	listCmd.Flags().StringVar(&listHandler.Until, "until", "", "Latest date to include")
	listCmd.Flags().BoolVar(&listHandler.Running, "running", false, "Only show running entries")

	editHandler := NewEditCommand(r.app)
	editCmd := &cobra.Command{
		Use:   "edit <entry-id> [description]",
		Short: "Rewrite a time entry",
		Long:  "Rewrite an entry's date, clock range and details. The stored duration is re-derived from the new range.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()
			return editHandler.Execute(ctx, args)
		},
	}
	editCmd.Flags().StringVar(&editHandler.Date, "date", "", "Date of the entry (default today)")
	editCmd.Flags().StringVar(&editHandler.From, "from", "", "Start clock time (HH:MM)")
	editCmd.Flags().StringVar(&editHandler.To, "to", "", "End clock time (HH:MM)")
	addEntryFlags(editCmd, &editHandler.Flags, r.app.config)

	deleteHandler := NewDeleteCommand(r.app)
	deleteCmd := &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete a time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext(cmd)
			defer cancel()
			return deleteHandler.Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		startCmd,
		stopCmd,
		statusCmd,
		logCmd,
		listCmd,
		editCmd,
		deleteCmd,
	)
}

// addEntryFlags registers the descriptive flags shared by commands that
// record time
func addEntryFlags(cmd *cobra.Command, flags *EntryFlags, cfg *config.Config) {
	cmd.Flags().StringVar(&flags.Project, "project", "", "Project reference")
	cmd.Flags().StringVar(&flags.Issue, "issue", "", "Issue reference")
	cmd.Flags().StringVar(&flags.Activity, "activity", "", "Activity kind")
	cmd.Flags().StringSliceVar(&flags.Tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().BoolVar(&flags.Billable, "billable", cfg.Entry.DefaultBillable, "Mark the entry billable")
}

// commandContext builds the per-command context, applying the configured
// timeout and the --owner override
func (r *RootCommand) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if owner, _ := cmd.Flags().GetString("owner"); owner != "" {
		r.app.config.Owner.ID = owner
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		r.app.config.Application.Verbose = verbose
	}

	timeout := r.app.config.Application.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}
