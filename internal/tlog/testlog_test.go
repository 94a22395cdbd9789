package tlog_test

import (
	stderrs "errors"
	"testing"

	"github.com/sirkon/errors"

	"github.com/sirkon/xorlist/internal/tlog"
)

const errSample errors.Const = "sample error"

func TestLogging(t *testing.T) {
	t.Run("log-std-error", func(t *testing.T) {
		tlog.Log(t, stderrs.New("not an error"))
	})

	t.Run("log-ctxed-error", func(t *testing.T) {
		tlog.Log(t, errors.New("ctx error").Int("position", 12).Int("size", 3).Str("list", "[1 2 3]"))
	})

	t.Run("check-nil", func(t *testing.T) {
		if tlog.Check(t, nil) {
			t.Error("nil error must not be reported")
		}
	})

	t.Run("expect-wrapped", func(t *testing.T) {
		err := errors.Wrap(errSample, "splice").Int("position", 4)
		if !tlog.Expect(t, err, errSample) {
			t.Error("wrapped sentinel must be recognized")
		}
	})
}
