package linerec

import (
	"testing"

	. "github.com/pamburus/go-tst/tst"
	"github.com/pamburus/slogx"
)

func TestOptions(tt *testing.T) {
	t := New(tt)

	options := func(options ...Option) options {
		return defaultOptions().with(options)
	}

	t.Run("nil", func(t Test) {
		options(nil)
	})

	t.Run("WithPolicy", func(t Test) {
		t.Run("default", func(t Test) {
			t.Expect(options().policy).To(Equal(PolicyLenient))
		})
		t.Run("strict", func(t Test) {
			t.Expect(options(WithPolicy(PolicyStrict)).policy).To(Equal(PolicyStrict))
		})
		t.Run("last wins", func(t Test) {
			t.Expect(options(WithPolicy(PolicyStrict), WithPolicy(PolicyLenient)).policy).To(Equal(PolicyLenient))
		})
	})

	t.Run("WithLogger", func(t Test) {
		t.Run("default", func(t Test) {
			t.Expect(options().logger).To(BeNil())
		})
		t.Run("non-nil", func(t Test) {
			logger := slogx.Default()
			t.Expect(options(WithLogger(logger)).logger).To(Equal(logger))
		})
	})
}
