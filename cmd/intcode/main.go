// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/ezrec/intcode/config"
)

// Globals are the flags shared by all commands.
type Globals struct {
	Verbose int    `short:"v" type:"counter" help:"Increase log verbosity (-v debug, -vv trace)."`
	Config  string `short:"c" type:"existingfile" help:"TOML configuration file."`
}

// Logger returns a console logger on stderr at the requested verbosity.
func (g *Globals) Logger() zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case g.Verbose >= 2:
		level = zerolog.TraceLevel
	case g.Verbose == 1:
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger().Level(level)
}

// LoadConfig loads the configuration file, if one was given.
// Without one, the returned configuration only has defaults applied.
func (g *Globals) LoadConfig() (cfg config.Config, err error) {
	if g.Config == "" {
		cfg.Defaults()
		return
	}

	return config.Load(g.Config)
}

type cli struct {
	Globals

	Run     RunCmd     `cmd:"" help:"Run a program against a tape of input values."`
	Amplify AmplifyCmd `cmd:"" help:"Run a program as a pipeline of phased amplifier stages."`
}

func main() {
	var args cli

	// Per-logger levels decide; the global default would hide trace.
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	ctx := kong.Parse(&args,
		kong.Name("intcode"),
		kong.Description("Intcode virtual machine."),
		kong.UsageOnError(),
	)

	err := ctx.Run(&args.Globals)
	ctx.FatalIfErrorf(err)
}
