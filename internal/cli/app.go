package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"timeclock/internal/api"
	"timeclock/internal/config"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	api    api.API
	config *config.Config
	out    io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
		out:    os.Stdout,
	}
}

// NewAppWithOutput creates a CLI application writing to the given writer,
// used by tests to capture output
func NewAppWithOutput(apiInstance api.API, cfg *config.Config, out io.Writer) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
		out:    out,
	}
}

// OwnerID returns the configured owner identifier
func (a *App) OwnerID() string {
	return a.config.Owner.ID
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}
