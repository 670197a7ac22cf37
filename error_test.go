package linerec_test

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/pamburus/go-tst/tst"
	"github.com/pamburus/linerec"
)

func TestError(tt *testing.T) {
	t := New(tt)

	cause := errors.New("cause")

	t.Run("Is", func(t Test) {
		sentinels := map[linerec.Kind]error{
			linerec.KindIncomplete: linerec.ErrIncomplete,
			linerec.KindNoMatch:    linerec.ErrNoMatch,
			linerec.KindFatal:      linerec.ErrFatal,
		}
		for kind, expected := range sentinels {
			err := error(&linerec.Error{Kind: kind, Err: cause})
			for _, sentinel := range sentinels {
				t.Expect(errors.Is(err, sentinel)).To(Equal(sentinel == expected))
			}
			t.Expect(errors.Is(err, cause)).To(BeTrue())
		}
	})

	t.Run("Message", func(t Test) {
		t.Expect((&linerec.Error{Kind: linerec.KindIncomplete}).Error()).To(Equal("incomplete record"))
		t.Expect((&linerec.Error{Kind: linerec.KindNoMatch, Err: cause}).Error()).To(Equal("invalid record: cause"))
	})

	t.Run("KindOf", func(t Test) {
		kind, ok := linerec.KindOf(fmt.Errorf("wrapped: %w", &linerec.Error{Kind: linerec.KindFatal}))
		t.Expect(ok).To(BeTrue())
		t.Expect(kind).To(Equal(linerec.KindFatal))

		_, ok = linerec.KindOf(cause)
		t.Expect(ok).To(BeFalse())
	})

	t.Run("KindString", func(t Test) {
		t.Expect(linerec.KindIncomplete.String()).To(Equal("incomplete"))
		t.Expect(linerec.KindNoMatch.String()).To(Equal("no-match"))
		t.Expect(linerec.KindFatal.String()).To(Equal("fatal"))
		t.Expect(linerec.Kind(9).String()).To(Equal("kind(9)"))
	})
}

func TestPolicy(tt *testing.T) {
	t := New(tt)

	t.Run("Text", func(t Test) {
		for _, policy := range []linerec.Policy{linerec.PolicyLenient, linerec.PolicyStrict} {
			text, err := policy.MarshalText()
			t.Expect(err).ToNot(HaveOccurred())
			t.Expect(string(text)).To(Equal(policy.String()))

			var decoded linerec.Policy
			t.Expect(decoded.UnmarshalText(text)).ToNot(HaveOccurred())
			t.Expect(decoded).To(Equal(policy))
		}
	})

	t.Run("Unknown", func(t Test) {
		var p linerec.Policy
		t.Expect(p.UnmarshalText([]byte("relaxed"))).To(HaveOccurred())

		_, err := linerec.Policy(7).MarshalText()
		t.Expect(err).To(HaveOccurred())
		t.Expect(linerec.Policy(7).String()).To(Equal("policy(7)"))
	})
}
