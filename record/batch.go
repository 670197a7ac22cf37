package record

import (
	"bufio"
	"io"
	"math/rand/v2"
)

// EncodeMany encodes records one per line.
// Each record is followed by a newline, the last one included,
// so that every record in the output is closed.
func EncodeMany(records []Record) ([]byte, error) {
	return AppendMany(nil, records), nil
}

// AppendMany appends the line-framed encoding of records to dst and returns the extended buffer.
func AppendMany(dst []byte, records []Record) []byte {
	for _, r := range records {
		dst = r.AppendEncoded(dst)
		dst = append(dst, Separator)
	}

	return dst
}

// WriteMany writes the line-framed encoding of records to w.
func WriteMany(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)

	var buf []byte
	for _, r := range records {
		buf = r.AppendEncoded(buf[:0])
		buf = append(buf, Separator)

		_, err := bw.Write(buf)
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

// RandomBatch returns n records with random alphanumeric identifiers and secrets.
func RandomBatch(n int) []Record {
	if n <= 0 {
		return nil
	}

	records := make([]Record, n)
	for i := range records {
		records[i] = Record{
			Identifier: randomString(randomFieldLen),
			Secret:     randomString(randomFieldLen),
		}
	}

	return records
}

// ---

// Separator terminates every encoded record in a stream.
const Separator = '\n'

// ---

func randomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[rand.IntN(len(alphanumeric))]
	}

	return string(b)
}

const (
	alphanumeric   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	randomFieldLen = 7
)
