package main

import (
	"fmt"
	"os"

	"github.com/ezrec/intcode/expr"
	"github.com/ezrec/intcode/pipeline"
)

// AmplifyCmd runs a phased amplifier pipeline.
type AmplifyCmd struct {
	Program    string `short:"p" type:"existingfile" help:"Program text for every stage."`
	Phases     string `short:"P" help:"Starlark expression of stage phases, e.g. '[9,8,7,6,5]'."`
	Signal     string `short:"S" help:"Initial signal expression (default 0)."`
	NoFeedback bool   `help:"Run each stage once, without feeding the output back."`
}

func (cmd *AmplifyCmd) Run(g *Globals) (err error) {
	cfg, err := g.LoadConfig()
	if err != nil {
		return
	}

	if cmd.Program != "" {
		cfg.Program = cmd.Program
	}
	if cmd.Phases != "" {
		cfg.Phases = nil
		cfg.PhaseExpr = cmd.Phases
	}
	if cmd.Signal != "" {
		cfg.Signal, err = expr.Int(cmd.Signal, nil)
		if err != nil {
			return
		}
	}
	if cmd.NoFeedback {
		feedback := false
		cfg.Feedback = &feedback
	}

	image, err := readImage(cfg.Program)
	if err != nil {
		return
	}

	phases, err := cfg.PhaseList()
	if err != nil {
		return
	}

	pl := pipeline.New(image, phases)
	pl.SetLogger(g.Logger())

	var result int64
	if cfg.IsFeedback() {
		result, err = pl.Run(cfg.Signal)
	} else {
		result, err = pl.Chain(cfg.Signal)
	}
	if err != nil {
		return
	}

	fmt.Fprintln(os.Stdout, result)
	return
}
