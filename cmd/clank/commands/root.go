// Package commands implements the CLI commands for the clank completion driver.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/clank/internal/app"
	"go.trai.ch/clank/internal/build"
	"go.trai.ch/clank/internal/core/ports"
)

// CLI represents the command line interface for clank.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Complete(ctx context.Context, file string, line, column int, opts app.CompleteOptions) (string, error)
	CacheClear(ctx context.Context, cacheDir string) error
}

// LogControls is implemented by loggers that support runtime switches.
type LogControls interface {
	SetDebug(enable bool)
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "clank",
		Short:         "Clang code-completion driver",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		controls, ok := log.(LogControls)
		if !ok {
			return
		}
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			controls.SetDebug(true)
		}
		if jsonLogs, _ := cmd.Flags().GetBool("json"); jsonLogs {
			controls.SetJSON(true)
		}
	}

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCompleteCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
