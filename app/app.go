// SPDX-License-Identifier: GPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/netdata/srmctl/config"
	"github.com/netdata/srmctl/logger"
	"github.com/netdata/srmctl/srm/client"
)

// ErrUsage is returned for an unknown command or wrong number of arguments.
var ErrUsage = errors.New("usage")

// App runs srmctl commands against a Spectrum Control server.
type App struct {
	*logger.Logger

	Config config.Config
	Output string
	In     io.Reader
	Out    io.Writer
}

func New(cfg config.Config, output string) *App {
	return &App{
		Logger: logger.New().With("component", "app"),
		Config: cfg,
		Output: output,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

type command struct {
	// nargs is the accepted number of arguments, -1 for zero or one.
	nargs int
	usage string
	run   func(a *App, ctx context.Context, c *client.Client, args []string) (*result, error)
}

var commands = map[string]command{
	"volume":         {nargs: -1, usage: "volume [NAME|UID]", run: (*App).volume},
	"volumes":        {nargs: 0, usage: "volumes", run: (*App).volumes},
	"systems":        {nargs: 0, usage: "systems", run: (*App).systems},
	"system":         {nargs: 1, usage: "system NAME", run: (*App).system},
	"system-volumes": {nargs: 1, usage: "system-volumes NAME", run: (*App).systemVolumes},
	"pools":          {nargs: 0, usage: "pools", run: (*App).pools},
	"pool":           {nargs: 1, usage: "pool NAME", run: (*App).pool},
	"perf":           {nargs: 2, usage: "perf SYSTEM VOLUME", run: (*App).performance},
	"activity":       {nargs: 2, usage: "activity SYSTEM VOLUME", run: (*App).activity},
}

// Commands returns the names of the known commands, sorted.
func Commands() []string {
	return slices.Sorted(maps.Keys(commands))
}

// Run logs in once, runs the command and writes its result to Out.
func (a *App) Run(ctx context.Context, name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command '%s', want one of: %s", ErrUsage, name, strings.Join(Commands(), ", "))
	}
	if !cmd.accepts(len(args)) {
		return fmt.Errorf("%w: %s", ErrUsage, cmd.usage)
	}

	c, err := client.Connect(ctx, a.Config.HTTPConfig, a.Logger)
	if err != nil {
		return err
	}
	defer c.Close()

	a.Debugf("running '%s' against '%s'", name, a.Config.URL)

	res, err := cmd.run(a, ctx, c, args)
	if err != nil {
		return err
	}

	return a.render(res)
}

func (c command) accepts(n int) bool {
	if c.nargs < 0 {
		return n <= 1
	}
	return n == c.nargs
}
