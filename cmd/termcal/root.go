package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termcal/calendar"
	"github.com/lixenwraith/termcal/config"
	"github.com/lixenwraith/termcal/input"
	"github.com/lixenwraith/termcal/session"
	"github.com/lixenwraith/termcal/terminal"
)

var version = "dev"

// startFunc runs the interactive session; replaced in tests
var startFunc = session.Start

// timeProvider supplies "today"; replaced in tests
var timeProvider calendar.TimeProvider = calendar.NewSystemTimeProvider()

func newRootCmd() *cobra.Command {
	var (
		configPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "termcal [month year]",
		Short: "Browse a month calendar in the terminal",
		Long: `termcal shows a month grid with a year and month index in a full-screen terminal view.

Without arguments it opens at today's date with today highlighted.
With a month (1-12) and a year it opens at that month with no highlight.

Keys: Up/Down change month, Left/Right change year, t returns to the start date, q quits.`,
		Args:    cobra.MaximumNArgs(2),
		Version: version,
		// Errors are printed once by main
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if logFile := setupLogging(debug); logFile != nil {
				defer logFile.Close()
			}
			return run(args, configPath)
		},
	}

	cmd.SetVersionTemplate(`{{printf "termcal version %s\n" .Version}}`)
	// Flags stop at the first positional, so a negative year reaches ParseArgs
	cmd.Flags().SetInterspersed(false)
	cmd.SetFlagErrorFunc(numericFlagError)
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default is $HOME/.config/termcal/config.yaml)")
	cmd.Flags().BoolVar(&debug, "debug", false, "write debug log to logs/termcal.log")

	return cmd
}

// numericFlagError reroutes a negative number that pflag took for a shorthand flag through ParseArgs
// With interspersed flags off this can only be the first positional, the month
func numericFlagError(_ *cobra.Command, err error) error {
	msg := err.Error()
	if !strings.HasPrefix(msg, "unknown shorthand flag") {
		return err
	}
	i := strings.LastIndex(msg, " in ")
	if i < 0 {
		return err
	}
	token := msg[i+len(" in "):]
	if _, convErr := strconv.ParseFloat(token, 64); convErr != nil {
		return err
	}
	if _, argErr := config.ParseArgs([]string{token}); argErr != nil {
		return argErr
	}
	return err
}

// run validates all configuration, then hands off to the session
// Nothing here touches the terminal before every input is known to be valid
func run(args []string, configPath string) error {
	start, err := config.ParseArgs(args)
	if err != nil {
		return err
	}

	file, err := config.Load(configPath)
	if err != nil {
		return err
	}

	override, err := input.LoadKeyConfig(file.Keys)
	if err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	keys := input.MergeKeyTable(input.DefaultKeyTable(), override)

	theme, err := terminal.DefaultTheme().WithColors(file.Theme)
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	var cal *calendar.Calendar
	if start == nil {
		cal = calendar.Today(timeProvider)
	} else {
		cal = calendar.From(calendar.NoDay, start.Month, start.Year)
	}
	log.Printf("starting at %s", cal)

	return startFunc(session.Options{
		Calendar: cal,
		Keys:     keys,
		Theme:    theme,
	})
}
