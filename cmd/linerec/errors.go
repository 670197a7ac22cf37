package main

import "errors"

var (
	errNoCommand     = errors.New("no command given")
	errNegativeCount = errors.New("count must not be negative")
)
