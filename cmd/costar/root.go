package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/costar/config"
	"github.com/katalvlaran/costar/logging"
	"github.com/katalvlaran/costar/watch"
)

// app carries the resolved configuration into subcommands.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "costar",
		Short:         "Actor collaboration graph engine",
		Long:          "costar links actors through shared movies: shortest co-star trails and the year two actors first became connected.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .costar.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	pf.Bool("log-source", false, "include source location in logs")
	pf.String("report", "", "write a run report (.toml, .yaml or .yml)")
	pf.Bool("watch", false, "re-run whenever an input file changes")
	pf.Int("base-year", 2015, "year whose movies cost 1 in weighted mode")

	bindFlags(a.v, pf, map[string]string{
		"log.level":  "log-level",
		"log.format": "log-format",
		"log.source": "log-source",
		"report":     "report",
		"watch":      "watch",
		"base_year":  "base-year",
	})

	root.AddCommand(newPathfinderCmd(a), newConnectionsCmd(a), newGenCmd(a))

	return root
}

// bindFlags binds each config key to its flag. A missing flag is a wiring
// bug and panics.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind %s to --%s: %v", key, flag, err))
		}
	}
}

// init resolves config file, env and flags, then builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	file, _ := cmd.Flags().GetString("config")
	if err := config.Setup(a.v, file); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cfg.Log, cmd.ErrOrStderr())

	return nil
}

// runOrWatch runs fn once, or under watch mode until ctx is cancelled.
func (a *app) runOrWatch(ctx context.Context, files []string, fn func(context.Context) error) error {
	if !a.cfg.Watch {
		return fn(ctx)
	}
	w, err := watch.New(files, a.cfg.WatchDebounce, a.log)
	if err != nil {
		return err
	}
	a.log.Info("watching inputs", "files", files)
	if err := watch.Loop(ctx, w, a.log, fn); err != nil && ctx.Err() == nil {
		return err
	}

	return nil
}
