// Package linerec parses newline-delimited streams of records.
//
// Every record is encoded on a single line terminated by a newline.
// A [Parser] peels records off the front of a buffer one line at a time
// and decodes each line with a [DecodeFunc].
// A trailing segment that has no terminating newline yet is never consumed;
// it is returned to the caller as residual input.
//
// Lines that fail to decode are handled according to the [Policy]:
//
//   - [PolicyLenient] drops the line and continues with the next one;
//   - [PolicyStrict] aborts the whole parse with a [KindFatal] error.
//
// Use [Reader] to parse records from an [io.Reader] progressively.
package linerec
