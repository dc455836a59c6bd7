// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/jessevdk/go-flags"

	"github.com/netdata/srmctl/srm/client"
)

const DefaultCommand = "volume"

// Option defines command line options.
type Option struct {
	ConfigFile string        `short:"c" long:"config" description:"configuration file to read (default srmctl.yaml if present)"`
	Output     string        `short:"o" long:"output" description:"output format" choice:"table" choice:"json" choice:"yaml" default:"table"`
	Window     client.Window `short:"w" long:"window" description:"performance look-back window, e.g. 12h, 3d, 2w"`
	Debug      bool          `short:"d" long:"debug" description:"debug mode"`
	Version    bool          `short:"v" long:"version" description:"display the version and exit"`

	Command string
	Args    []string
}

// Parse returns parsed command-line flags in Option struct. args must not include the program name.
func Parse(name string, args []string) (*Option, error) {
	opt := &Option{}
	parser := flags.NewParser(opt, flags.Default)
	parser.Name = name
	parser.Usage = "[OPTIONS] [command] [args...]\n\n" + usageCommands

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	opt.Command = DefaultCommand
	if len(rest) > 0 {
		opt.Command, opt.Args = rest[0], rest[1:]
	}

	return opt, nil
}

func IsHelp(err error) bool {
	return flags.WroteHelp(err)
}

const usageCommands = `Commands:
  volume [NAME|UID]          show a volume, prompts when no argument is given (default)
  volumes                    list all volumes
  systems                    list storage systems
  system NAME                show a storage system
  system-volumes NAME        list the volumes of a storage system
  pools                      list pools
  pool NAME                  show a pool
  perf SYSTEM VOLUME         list performance samples of a volume
  activity SYSTEM VOLUME     report whether a volume had I/O in the window`
