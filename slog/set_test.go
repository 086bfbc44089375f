package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/seenset"
	"github.com/fwojciec/seenset/mock"
	setslog "github.com/fwojciec/seenset/slog"
	"github.com/stretchr/testify/assert"
)

func newDebugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingSet_Add(t *testing.T) {
	t.Parallel()

	t.Run("logs dup flag and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Set{
			AddFn:      func(key seenset.Key) bool { return true },
			LenFn:      func() int { return 7 },
			ContainsFn: func(key seenset.Key) bool { return true },
		}

		s := setslog.NewLoggingSet(inner, newDebugLogger(&buf))
		dup := s.Add(seenset.StringKey("https://example.com/a"))

		assert.True(t, dup)
		output := buf.String()
		assert.Contains(t, output, "add")
		assert.Contains(t, output, "dup=true")
		assert.Contains(t, output, "len=7")
		assert.Contains(t, output, "duration=")
	})

	t.Run("passes through new items", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Set{
			AddFn: func(key seenset.Key) bool { return false },
			LenFn: func() int { return 1 },
		}

		s := setslog.NewLoggingSet(inner, newDebugLogger(&buf))

		assert.False(t, s.Add(seenset.StringKey("https://example.com/b")))
		assert.Contains(t, buf.String(), "dup=false")
	})
}

func TestLoggingSet_Contains(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Set{
		ContainsFn: func(key seenset.Key) bool { return false },
	}

	s := setslog.NewLoggingSet(inner, newDebugLogger(&buf))

	assert.False(t, s.Contains(seenset.StringKey("https://example.com/c")))
	output := buf.String()
	assert.Contains(t, output, "contains")
	assert.Contains(t, output, "found=false")
}

func TestLoggingSet_Len_delegates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Set{
		LenFn: func() int { return 42 },
	}

	s := setslog.NewLoggingSet(inner, newDebugLogger(&buf))

	assert.Equal(t, 42, s.Len())
	assert.Empty(t, buf.String(), "Len should not log")
}
