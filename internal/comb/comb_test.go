package comb_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/pamburus/go-tst/tst"
	"github.com/pamburus/linerec/internal/comb"
)

func TestTakeUntil(tt *testing.T) {
	t := New(tt)

	p := comb.TakeUntil('\n')

	t.Run("Found", func(t Test) {
		rest, output, err := p([]byte("abc\ndef"))
		t.Expect(err).ToNot(HaveOccurred())
		t.Expect(string(output)).To(Equal("abc"))
		t.Expect(string(rest)).To(Equal("\ndef"))
	})

	t.Run("Empty", func(t Test) {
		rest, output, err := p([]byte("\n"))
		t.Expect(err).ToNot(HaveOccurred())
		t.Expect(output).To(HaveLen(0))
		t.Expect(string(rest)).To(Equal("\n"))
	})

	t.Run("NotFound", func(t Test) {
		rest, _, err := p([]byte("abc"))
		t.Expect(errors.Is(err, comb.ErrIncomplete)).To(BeTrue())
		t.Expect(string(rest)).To(Equal("abc"))
	})
}

func TestByte(tt *testing.T) {
	t := New(tt)

	p := comb.Byte('\n')

	t.Run("Match", func(t Test) {
		rest, output, err := p([]byte("\nx"))
		t.Expect(err).ToNot(HaveOccurred())
		t.Expect(output).To(Equal(byte('\n')))
		t.Expect(string(rest)).To(Equal("x"))
	})

	t.Run("Mismatch", func(t Test) {
		rest, _, err := p([]byte("x"))
		var e *comb.Error
		t.Expect(errors.As(err, &e)).To(BeTrue())
		t.Expect(string(rest)).To(Equal("x"))
	})

	t.Run("Empty", func(t Test) {
		_, _, err := p(nil)
		t.Expect(errors.Is(err, comb.ErrIncomplete)).To(BeTrue())
	})
}

func TestLine(tt *testing.T) {
	t := New(tt)

	line := comb.MapRes(comb.TakeUntil('\n'), func(b []byte) (int, error) {
		return strconv.Atoi(string(b))
	})
	lenient := comb.Terminated(line, comb.Byte('\n'))
	strict := comb.Terminated(comb.Cut(line), comb.Byte('\n'))

	t.Run("Success", func(t Test) {
		for _, p := range []comb.Parser[int]{lenient, strict} {
			rest, output, err := p([]byte("42\n43\n"))
			t.Expect(err).ToNot(HaveOccurred())
			t.Expect(output).To(Equal(42))
			t.Expect(string(rest)).To(Equal("43\n"))
		}
	})

	t.Run("Incomplete", func(t Test) {
		for _, p := range []comb.Parser[int]{lenient, strict} {
			rest, _, err := p([]byte("42"))
			t.Expect(errors.Is(err, comb.ErrIncomplete)).To(BeTrue())
			t.Expect(string(rest)).To(Equal("42"))
		}
	})

	t.Run("LenientMismatch", func(t Test) {
		rest, _, err := lenient([]byte("x\n1\n"))
		var e *comb.Error
		t.Expect(errors.As(err, &e)).To(BeTrue())
		t.Expect(string(e.Input)).To(Equal("x\n1\n"))
		t.Expect(string(rest)).To(Equal("x\n1\n"))

		var ne *strconv.NumError
		t.Expect(errors.As(err, &ne)).To(BeTrue())
	})

	t.Run("StrictMismatch", func(t Test) {
		rest, _, err := strict([]byte("x\n1\n"))
		var f *comb.Failure
		t.Expect(errors.As(err, &f)).To(BeTrue())
		t.Expect(string(f.Input)).To(Equal("x\n1\n"))
		t.Expect(string(rest)).To(Equal("x\n1\n"))

		var e *comb.Error
		t.Expect(errors.As(err, &e)).To(BeFalse())
	})

	t.Run("TerminatorMismatch", func(t Test) {
		p := comb.Terminated(comb.TakeUntil(';'), comb.Byte('\n'))
		rest, _, err := p([]byte("ab;\n"))
		var e *comb.Error
		t.Expect(errors.As(err, &e)).To(BeTrue())
		t.Expect(string(e.Input)).To(Equal("ab;\n"))
		t.Expect(string(rest)).To(Equal("ab;\n"))
	})
}
