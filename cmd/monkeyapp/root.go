package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"MonkeyApp/internal/menu"
)

// skipSetup lists commands that run without config or a catalog source.
var skipSetup = map[string]bool{
	"version":                       true,
	"help":                          true,
	"completion":                    true,
	cobra.ShellCompRequestCmd:       true,
	cobra.ShellCompNoDescRequestCmd: true,
}

// NewRootCmd creates the root command. Without a subcommand it runs the interactive menu.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp(viper.New()))
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monkeyapp",
		Short: "Browse a catalog of monkey species",
		Long: `monkeyapp lists monkey species, looks them up by name and picks random ones,
counting how many random picks were made in this process.

The catalog is loaded once, on first use, from the configured source:
the built-in seed list (default), an HTTP endpoint, a SQL table or an S3 object.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if needsNoSetup(cmd) {
				return nil
			}
			if err := a.setup(cmd.Context()); err != nil {
				return errors.Join(err, a.close())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, a)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/monkeyapp/config.yaml)")
	f.String("source", "", "catalog source: seed, http, sql or s3")
	f.Duration("seed-delay", 0, "simulated fetch delay for the seed source")
	f.String("http-url", "", "base URL of the http source")
	f.String("log-level", "", "log level: debug, info, warn, error")
	f.Uint64("seed", 0, "random seed for reproducible picks (0 = unseeded)")

	_ = a.v.BindPFlag("source.kind", f.Lookup("source"))
	_ = a.v.BindPFlag("source.seed_delay", f.Lookup("seed-delay"))
	_ = a.v.BindPFlag("source.http_url", f.Lookup("http-url"))
	_ = a.v.BindPFlag("log.level", f.Lookup("log-level"))
	_ = a.v.BindPFlag("rand_seed", f.Lookup("seed"))

	cmd.AddCommand(NewMenuCmd(a))
	cmd.AddCommand(NewListCmd(a))
	cmd.AddCommand(NewFindCmd(a))
	cmd.AddCommand(NewRandomCmd(a))
	cmd.AddCommand(NewServeCmd(a))
	cmd.AddCommand(NewVersionCmd())

	closeAfterRun(cmd, a)
	return cmd
}

func needsNoSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if skipSetup[c.Name()] {
			return true
		}
	}
	return false
}

// closeAfterRun wraps every RunE so resources opened in setup are released
// whether the command succeeds or fails. cobra skips post-run hooks on error.
func closeAfterRun(cmd *cobra.Command, a *app) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) (err error) {
			defer func() { err = errors.Join(err, a.close()) }()
			return run(c, args)
		}
	}
	for _, sub := range cmd.Commands() {
		closeAfterRun(sub, a)
	}
}

// NewMenuCmd is the explicit form of running monkeyapp without arguments.
func NewMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, a)
		},
	}
}

func runMenu(cmd *cobra.Command, a *app) error {
	return menu.New(a.svc, cmd.InOrStdin(), cmd.OutOrStdout(), a.log).Run(cmd.Context())
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
