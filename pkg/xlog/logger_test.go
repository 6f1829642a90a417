package xlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/containerkit/imageref/pkg/xlog"
)

func newTestConfig(w *bytes.Buffer) xlog.Config {
	c := xlog.NewConfig()
	c.AddSource = false
	c.AttrReplacer = xlog.ChainReplacer(
		xlog.SuppressTimeAttrReplacer(),
	)
	c.Writer = w
	return c
}

func TestLogger_SetLevel(t *testing.T) {
	stdout := &bytes.Buffer{}
	logger := xlog.New(newTestConfig(stdout))

	logger.Debug("log message with attrs", "attr1", "val1", "attr2", "val2")
	logger.Debugf("log message with format: %s", "hello")
	logger.SetLevel(xlog.LevelDebug)
	logger.Debug("log message with attrs", "attr1", "val1", "attr2", "val2")
	logger.Debugf("log message with format: %s", "hello")

	want := strings.TrimLeft(`
level=DEBUG msg="log message with attrs" attr1=val1 attr2=val2
level=DEBUG msg="log message with format: hello"
`, "\n")
	assert.Equal(t, want, stdout.String())
}

func TestLogger_With(t *testing.T) {
	stdout := &bytes.Buffer{}
	logger := xlog.New(newTestConfig(stdout)).With("component", "test")

	logger.Info("hello")

	assert.Equal(t, "level=INFO msg=hello component=test\n", stdout.String())
}

func TestLogger_FileHandler(t *testing.T) {
	stdout := &bytes.Buffer{}
	tempdir := t.TempDir()

	c := newTestConfig(stdout)
	c.FilePath = filepath.Join(tempdir, "x.log")
	logger := xlog.New(c)

	logger.Info("log message with attrs", "attr1", "val1")
	logger.Debug("suppressed at info level")

	t.Run("stdout", func(t *testing.T) {
		want := "level=INFO msg=\"log message with attrs\" attr1=val1\n"
		assert.Equal(t, want, stdout.String())
	})

	t.Run("logfile", func(t *testing.T) {
		content, err := os.ReadFile(c.FilePath)
		require.NoError(t, err)

		var record map[string]any
		require.NoError(t, json.Unmarshal(bytes.TrimSpace(content), &record))
		assert.Equal(t, "INFO", record["level"])
		assert.Equal(t, "log message with attrs", record["msg"])
		assert.Equal(t, "val1", record["attr1"])
	})
}

func TestDefault_Replaceable(t *testing.T) {
	stdout := &bytes.Buffer{}
	previous := xlog.Default()
	defer xlog.SetDefault(previous)

	xlog.SetDefault(xlog.New(newTestConfig(stdout)))
	xlog.Info("from the default logger")

	assert.Contains(t, stdout.String(), `msg="from the default logger"`)
}

func TestFromContext(t *testing.T) {
	stdout := &bytes.Buffer{}
	previous := xlog.Default()
	defer xlog.SetDefault(previous)
	xlog.SetDefault(xlog.New(newTestConfig(stdout)))

	ctx := xlog.WithContext(context.Background(), "request", "42")
	xlog.C(ctx).Info("with context attrs")

	assert.Equal(t, "level=INFO msg=\"with context attrs\" request=42\n", stdout.String())
}
