package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/pamburus/linerec"
	"github.com/pamburus/linerec/record"
	"github.com/pamburus/slogx"
)

type parseCmd struct {
	Policy linerec.Policy `arg:"-p,--policy" default:"lenient" help:"what to do with malformed lines: lenient or strict"`
	File   string         `arg:"positional" help:"input file, standard input if empty or -"`
}

func (c *parseCmd) run(ctx context.Context, logger *slogx.Logger, stdout io.Writer) (err error) {
	input, err := openInput(c.File, os.Stdin)
	if err != nil {
		return err
	}

	parser := linerec.NewParser(
		linerec.TextDecoder[record.Record](),
		linerec.WithPolicy(c.Policy),
		linerec.WithLogger(logger),
	)

	reader := linerec.NewReader(input, parser)
	defer func() {
		err = errors.Join(err, reader.Close())
	}()

	// Only whole lines are written, so flushing on failure leaves complete records.
	out := bufio.NewWriter(stdout)
	defer func() {
		err = errors.Join(err, out.Flush())
	}()

	var buf []byte
	for {
		values, err := reader.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, linerec.ErrIncomplete) {
			logger.Warn("unterminated record at end of input", slog.Int("bytes", len(reader.Residual())))

			break
		}
		if err != nil {
			return err
		}

		buf = record.AppendMany(buf[:0], values)
		_, err = out.Write(buf)
		if err != nil {
			return err
		}
	}

	logger.Info("parsed", slog.Any("stat", parser.Stat()), slog.String("policy", c.Policy.String()))

	return nil
}

// openInput opens the named file, or returns stdin that is left open when closed.
func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(stdin), nil
	}

	return os.Open(name)
}
