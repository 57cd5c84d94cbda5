package logs

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestSpanAnnotation(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(func() Writer {
		return buf
	}).Call(func(
		logger Logger,
		newSpan NewSpan,
	) {
		ctx, span := newSpan(context.Background(), "test session")
		logger.InfoContext(ctx, "inside")

		if span == "" {
			t.Fatal("empty span")
		}
		if !strings.Contains(buf.String(), string(span)) {
			t.Fatalf("span not in output: %s", buf.String())
		}
	})
}

func TestWrapSpan(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		newSpan NewSpan,
	) {
		ctx, span := newSpan(context.Background(), "errors")
		err := WrapSpan(ctx, errTest)
		if !strings.Contains(err.Error(), string(span)) {
			t.Fatalf("got %v", err)
		}
	})
}

var errTest = errTestType{}

type errTestType struct{}

func (errTestType) Error() string { return "test error" }
