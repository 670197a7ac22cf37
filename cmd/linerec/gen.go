package main

import (
	"io"

	"github.com/pamburus/linerec/record"
)

type genCmd struct {
	Count int `arg:"-n,--count" default:"10" help:"number of records to generate"`
}

func (c *genCmd) run(stdout io.Writer) error {
	if c.Count < 0 {
		return errNegativeCount
	}

	return record.WriteMany(stdout, record.RandomBatch(c.Count))
}
