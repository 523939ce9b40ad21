package log_test

import (
	"bytes"
	"testing"

	"github.com/named-data/ndnlp/std/log"
	tu "github.com/named-data/ndnlp/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

type testTag struct{}

func (testTag) String() string { return "face-256" }

func TestParseLevel(t *testing.T) {
	tu.SetT(t)

	require.Equal(t, log.LevelTrace, tu.NoErr(log.ParseLevel("TRACE")))
	require.Equal(t, log.LevelWarn, tu.NoErr(log.ParseLevel("warn")))
	require.Equal(t, "ERROR", tu.NoErr(log.ParseLevel("Error")).String())
	tu.Err(log.ParseLevel("verbose"))
}

func TestLoggerLevel(t *testing.T) {
	tu.SetT(t)

	buf := &bytes.Buffer{}
	l := log.NewText(buf)
	require.Equal(t, log.LevelInfo, l.Level())

	l.Debug(nil, "hidden")
	require.Equal(t, 0, buf.Len())

	l.Info(testTag{}, "Frame received", "len", 12)
	require.Contains(t, buf.String(), "level=INFO")
	require.Contains(t, buf.String(), "tag=face-256")
	require.Contains(t, buf.String(), "len=12")

	require.Equal(t, log.LevelInfo, l.SetLevel(log.LevelTrace))
	buf.Reset()
	l.Trace("lp", "Dropping packet")
	require.Contains(t, buf.String(), "level=TRACE")
	require.Contains(t, buf.String(), "tag=lp")
}

func TestDefaultLogger(t *testing.T) {
	tu.SetT(t)

	prev := log.Default()
	defer log.SetDefault(prev)

	buf := &bytes.Buffer{}
	log.SetDefault(log.NewJson(buf))
	require.False(t, log.HasTrace())

	log.Warn(nil, "Archive is empty", "prefix", "/face")
	require.Contains(t, buf.String(), `"level":"WARN"`)
	require.Contains(t, buf.String(), `"prefix":"/face"`)
}

func TestLoggerSource(t *testing.T) {
	tu.SetT(t)

	buf := &bytes.Buffer{}
	l := log.NewText(buf)
	l.Info(nil, "No source at info")
	require.NotContains(t, buf.String(), "source=")

	l.SetLevel(log.LevelDebug)
	buf.Reset()
	l.Debug(nil, "With source")
	require.Contains(t, buf.String(), "source=github.com/named-data/ndnlp/std/log_test.TestLoggerSource")
	require.Equal(t, "UNKNOWN", log.Level(3).String())
}
