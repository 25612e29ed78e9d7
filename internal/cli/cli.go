package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/hamidzr/gweather/constant"
	"github.com/hamidzr/gweather/core"
	"github.com/hamidzr/gweather/internal/config"
	"github.com/hamidzr/gweather/internal/logger"
	"github.com/hamidzr/gweather/model"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const appID = "io.github.hamidzr.gweather"

// newApp is swapped out in tests.
var newApp = func() fyne.App { return app.NewWithID(appID) }

// pickCity runs the interactive history picker; swapped out in tests.
var pickCity = core.PickHistory

// session is the loaded config plus the state every command dispatches on.
type session struct {
	cfg        *config.Config
	state      *core.State
	dispatcher *core.Dispatcher
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.InitConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	logger.SetLevel(cfg.LogLevel)
	state := core.NewState(cfg, core.NewService(cfg))
	return &session{cfg: cfg, state: state, dispatcher: core.NewDispatcher(state)}, nil
}

func InitCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           constant.ProjectName,
		Short:         "gweather shows the current weather and remembers recent searches",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			initConfig, _ := cmd.Flags().GetBool("init-config")
			if initConfig {
				return writeDefaultConfig(cmd.OutOrStdout())
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			if s.cfg.TerminalMode {
				return runTerminalMode(cmd, s)
			}
			return runGUI(s)
		},
	}

	config.BindFlags(rootCmd)
	rootCmd.AddCommand(
		newLookupCmd(),
		newLocateCmd(),
		newHistoryCmd(),
		newUnitCmd(),
	)
	return rootCmd
}

func writeDefaultConfig(out io.Writer) error {
	configDir, err := config.GetPreferredConfigDir()
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	configPath, err := config.InitConfigFile(configDir)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	fmt.Fprintf(out, "✅ Config file created successfully at: %s\n", configPath)
	fmt.Fprintf(out, "📝 Edit the file to customize your settings\n")
	return nil
}

func runGUI(s *session) error {
	if s.state.Service == nil {
		logrus.Warn(config.ErrMissingAPIKey)
	}
	gui := core.NewGUI(newApp(), s.dispatcher)
	gui.ShowAndRun()
	return nil
}

func runTerminalMode(cmd *cobra.Command, s *session) error {
	logrus.Debug("Running in terminal mode")
	city, err := pickCity(s.state.History.List(), "City: ", cmd.ErrOrStderr())
	if err != nil {
		if errors.Is(err, core.ErrInputCanceled) {
			return model.NewExitError(model.UserCanceled, err)
		}
		return err
	}
	return lookup(cmd, s, core.EventSearch, city)
}

// lookup dispatches a search style event and prints the resulting report.
func lookup(cmd *cobra.Command, s *session, id core.EventID, payload string) error {
	if err := s.cfg.RequireAPIKey(); err != nil {
		return model.NewExitError(model.LookupFailed, err)
	}
	if err := s.dispatcher.Dispatch(cmd.Context(), id, payload); err != nil {
		if s.state.LastError != "" && s.state.LastError != err.Error() {
			err = fmt.Errorf("%s: %w", s.state.LastError, err)
		}
		return model.NewExitError(model.LookupFailed, err)
	}
	fmt.Fprint(cmd.OutOrStdout(), core.FormatReport(s.state.Current, s.state.Unit))
	return nil
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <city...>",
		Short: "Print the current weather for a city",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			return lookup(cmd, s, core.EventSearch, strings.Join(args, " "))
		},
	}
}

func newLocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "locate <lat,lon>",
		Short:   "Print the current weather at coordinates",
		Example: "  gweather locate 51.5,-0.12\n  gweather locate -- -33.87,151.21",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			return lookup(cmd, s, core.EventLocate, coordinateArg(args))
		},
	}
}

// coordinateArg joins "51.5," "-0.12" style arguments into one "lat,lon" value.
func coordinateArg(args []string) string {
	parts := lo.Map(args, func(a string, _ int) string { return strings.Trim(a, ", ") })
	return strings.Join(parts, ",")
}

func newHistoryCmd() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent searches, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), core.FormatHistory(s.state.History.List()))
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget all recent searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			if err := s.dispatcher.Dispatch(cmd.Context(), core.EventClearHistory, ""); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Recent searches cleared")
			return nil
		},
	}

	pickCmd := &cobra.Command{
		Use:   "pick",
		Short: "Fuzzy pick a recent search and look it up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			items := s.state.History.List()
			if len(items) == 0 {
				return model.ErrNoHistory
			}
			city, err := pickCity(items, "Recent: ", cmd.ErrOrStderr())
			if err != nil {
				if errors.Is(err, core.ErrInputCanceled) {
					return model.NewExitError(model.UserCanceled, err)
				}
				return err
			}
			return lookup(cmd, s, core.EventHistorySelect, city)
		},
	}

	historyCmd.AddCommand(clearCmd, pickCmd)
	return historyCmd
}

func newUnitCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "unit [celsius|fahrenheit|toggle]",
		Short:     "Show or change the temperature display unit",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(model.Celsius), string(model.Fahrenheit), "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				id, payload := core.EventSetUnit, args[0]
				if strings.EqualFold(args[0], "toggle") {
					id, payload = core.EventToggleUnit, ""
				}
				if err := s.dispatcher.Dispatch(cmd.Context(), id, payload); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Temperature unit: %s (%s)\n", s.state.Unit, s.state.Unit.Symbol())
			return nil
		},
	}
}
