package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNew_JSONWithRunID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Config{Output: &buf}, RunIDExtractor())
	require.NoError(t, err)

	ctx, id := WithRunID(context.Background())
	log.InfoContext(ctx, "row selected", slog.Int("rows", 3))

	rec := decode(t, &buf)
	require.Equal(t, "row selected", rec["msg"])
	require.Equal(t, id, rec["run_id"])
	require.EqualValues(t, 3, rec["rows"])
}

func TestNew_NoRunIDWithoutContextValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Config{Output: &buf}, RunIDExtractor())
	require.NoError(t, err)

	log.Info("plain")
	require.NotContains(t, decode(t, &buf), "run_id")
}

func TestNew_LevelAndFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Config{Level: "warn", Format: "text", Output: &buf})
	require.NoError(t, err)

	log.Info("hidden")
	require.Zero(t, buf.Len())

	log.Warn("shown")
	require.Contains(t, buf.String(), "level=WARN")
	require.Contains(t, buf.String(), "msg=shown")
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Level: "loud"})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(Config{Format: "xml"})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWithRunID_Unique(t *testing.T) {
	t.Parallel()

	ctx1, id1 := WithRunID(context.Background())
	_, id2 := WithRunID(context.Background())
	require.NotEqual(t, id1, id2)

	got, ok := RunID(ctx1)
	require.True(t, ok)
	require.Equal(t, id1, got)

	_, ok = RunID(context.Background())
	require.False(t, ok)
}

func TestDecorator_KeepsExtractorsAcrossWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), nil, func(context.Context) (slog.Attr, bool) {
		return slog.String("app", "luckymail"), true
	})

	slog.New(h).With("k", "v").WithGroup("g").Info("msg")

	rec := decode(t, &buf)
	require.Equal(t, "v", rec["k"])
	group, ok := rec["g"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "luckymail", group["app"])
}

func TestMultiHandler(t *testing.T) {
	t.Parallel()

	var all, errs bytes.Buffer
	h := newMultiHandler(
		slog.NewJSONHandler(&all, nil),
		slog.NewJSONHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h)

	log.Info("info")
	require.NotZero(t, all.Len())
	require.Zero(t, errs.Len())

	log.Error("boom")
	require.Contains(t, errs.String(), "boom")
}

func TestFlush_WithoutSentry(t *testing.T) {
	t.Parallel()

	require.NoError(t, Flush(0))
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { NewNope().Error("discarded") })
}
