package main

import (
	"fmt"
	"io"

	"github.com/pamburus/linerec"
	"github.com/pamburus/linerec/record"
)

type demoCmd struct {
	Count int `arg:"-n,--count" default:"5" help:"number of random records to print"`
}

func (c *demoCmd) run(stdout io.Writer) error {
	line, err := record.New("Spongebob", "HeyPatrick").Encode()
	if err != nil {
		return err
	}

	batch, err := record.EncodeMany(record.RandomBatch(c.Count))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "%s\nSome random records:\n%s", line, batch)
	if err != nil {
		return err
	}

	bad := []byte(`{"username":345,"password":"HeyPatrick"}`)
	_, err = linerec.DecodeOne[record.Record](bad)
	_, werr := fmt.Fprintf(stdout, "Trying to decode this: %s\nyields this error: %v\n", bad, err)

	return werr
}
