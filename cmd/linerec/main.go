// Package main implements the linerec command that generates, parses and demonstrates record line streams.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/alexflint/go-arg"
	"github.com/pamburus/slogx"
)

func main() {
	var args args
	p := arg.MustParse(&args)
	if p.Subcommand() == nil {
		p.Fail("missing subcommand")
	}

	logger := newLogger(os.Stderr, args.Verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, &args, logger, os.Stdout)
	stop()

	if err != nil {
		logger.Error("command failed", slogx.ErrorAttr(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, args *args, logger *slogx.Logger, stdout io.Writer) error {
	switch {
	case args.Demo != nil:
		return args.Demo.run(stdout)
	case args.Gen != nil:
		return args.Gen.run(stdout)
	case args.Parse != nil:
		return args.Parse.run(ctx, logger, stdout)
	default:
		return errNoCommand
	}
}

// ---

type args struct {
	Demo    *demoCmd  `arg:"subcommand:demo" help:"print a sample record, a random batch and a decode error"`
	Gen     *genCmd   `arg:"subcommand:gen" help:"write random records as a line stream"`
	Parse   *parseCmd `arg:"subcommand:parse" help:"parse a line stream and write valid records back"`
	Verbose bool      `arg:"-v,--verbose" help:"log parse errors at debug level"`
}

func (args) Description() string {
	return "linerec works with newline-delimited streams of JSON credential records"
}
