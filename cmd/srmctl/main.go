// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/net/http/httpproxy"

	"github.com/netdata/srmctl/app"
	"github.com/netdata/srmctl/cli"
	"github.com/netdata/srmctl/config"
	"github.com/netdata/srmctl/logger"
	"github.com/netdata/srmctl/pkg/buildinfo"
)

func main() {
	_, _ = maxprocs.Set(maxprocs.Logger(func(s string, args ...interface{}) {}))

	opts := parseCLI()

	if opts.Version {
		fmt.Printf("srmctl, version: %s\n", buildinfo.Version)
		return
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		logger.Errorf("config: %v", err)
		os.Exit(1)
	}

	if cfg.LogLevel != "" {
		logger.Level.SetByName(cfg.LogLevel)
	}
	if opts.Debug {
		logger.Level.Set(slog.LevelDebug)
	}
	if !opts.Window.IsZero() {
		cfg.Performance.Window = opts.Window
	}

	a := app.New(cfg, opts.Output)

	a.Debugf("srmctl: %s", buildinfo.Info())
	proxyCfg := httpproxy.FromEnvironment()
	a.Debugf("env HTTP_PROXY '%s', HTTPS_PROXY '%s'", proxyCfg.HTTPProxy, proxyCfg.HTTPSProxy)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx, opts.Command, opts.Args); err != nil {
		if errors.Is(err, app.ErrUsage) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		} else {
			a.Errorf("%v", err)
		}
		stop()
		os.Exit(1)
	}
}

func parseCLI() *cli.Option {
	opt, err := cli.Parse(filepath.Base(os.Args[0]), os.Args[1:])
	if err != nil {
		if cli.IsHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	return opt
}
