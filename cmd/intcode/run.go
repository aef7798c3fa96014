package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/expr"
	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrProgramMissing = errors.New(f("no program given"))
)

// ErrPoke is a malformed --set argument.
type ErrPoke string

func (err ErrPoke) Error() string {
	return f("'%v' is not ADDR=VALUE", string(err))
}

// RunCmd runs a single program.
type RunCmd struct {
	Program string   `short:"p" type:"existingfile" help:"Program text to run."`
	Inputs  string   `short:"i" help:"Starlark expression of values queued before the tape."`
	Set     []string `short:"s" help:"Poke ADDR=VALUE before running; VALUE may be an expression."`
	Dump    []int    `short:"d" help:"Memory addresses to print after the program halts."`
	Tape    string   `short:"t" default:"-" help:"Tape input file ('-' for stdin)."`
	Output  string   `short:"o" default:"-" help:"Tape output file ('-' for stdout)."`
}

// Poke is a memory write applied before a run.
type Poke struct {
	Addr  int
	Value int64
}

// parsePokes converts ADDR=VALUE words into pokes.
func parsePokes(words []string) (pokes []Poke, err error) {
	for _, word := range words {
		addr_str, value_str, ok := strings.Cut(word, "=")
		if !ok {
			err = ErrPoke(word)
			return
		}

		var poke Poke
		poke.Addr, err = strconv.Atoi(strings.TrimSpace(addr_str))
		if err != nil {
			err = errors.Join(ErrPoke(word), err)
			return
		}

		poke.Value, err = expr.Int(value_str, nil)
		if err != nil {
			return
		}
		pokes = append(pokes, poke)
	}

	return
}

// readImage loads program text from a file.
func readImage(path string) (image []int64, err error) {
	if path == "" {
		err = ErrProgramMissing
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return intcode.ReadProgram(inf)
}

func (cmd *RunCmd) Run(g *Globals) (err error) {
	cfg, err := g.LoadConfig()
	if err != nil {
		return
	}

	if cmd.Program != "" {
		cfg.Program = cmd.Program
	}
	if cmd.Inputs != "" {
		cfg.Inputs = cmd.Inputs
	}
	if len(cmd.Dump) != 0 {
		cfg.Dump = cmd.Dump
	}

	image, err := readImage(cfg.Program)
	if err != nil {
		return
	}

	inputs, err := cfg.InputList()
	if err != nil {
		return
	}

	pokes, err := parsePokes(cmd.Set)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator(image)
	emu.SetLogger(g.Logger())

	for _, poke := range pokes {
		err = emu.Poke(poke.Addr, poke.Value)
		if err != nil {
			return
		}
	}

	for _, value := range inputs {
		emu.Inputs.Send(value)
	}

	if cmd.Tape == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(cmd.Tape)
		if err != nil {
			return err
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if cmd.Output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	err = emu.Run()
	if err != nil {
		return
	}

	for _, addr := range cfg.Dump {
		var value int64
		value, err = emu.Peek(addr)
		if err != nil {
			return
		}
		fmt.Fprintf(emu.Tape.Output, "[%d] = %d\n", addr, value)
	}

	return
}
