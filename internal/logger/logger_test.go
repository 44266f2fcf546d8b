package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomFormatter(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("debug", "", &buf)
	require.NoError(t, err)

	l.WithField("target", "weightChart").Warn("skip rendering")

	line := buf.String()
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[WARN\] \[logger_test.go:\d+\] skip rendering target=weightChart\n$`, line)
}

func TestNew_LevelFallback(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("verbose", "", &buf)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[INFO]")
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "render.log")
	var buf bytes.Buffer
	l, err := New("info", path, &buf)
	require.NoError(t, err)

	l.Info("written")
	assert.FileExists(t, path)
}

func TestKratosLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("info", "", &buf)
	require.NoError(t, err)

	helper := log.NewHelper(NewKratosLogger(l))
	helper.Debugf("dropped")
	helper.Errorf("load snapshot: %s", "timeout")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "[ERRO]")
	assert.Contains(t, out, "load snapshot: timeout")
}

func TestNewKratos_ReportsBusinessCaller(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("info", "", &buf)
	require.NoError(t, err)

	log.NewHelper(NewKratos(l)).Infof("from usecase")

	line := buf.String()
	assert.Regexp(t, `\[INFO\] \[logger_test.go:\d+\] from usecase\n$`, line)
	assert.NotContains(t, line, "kratos.go")
	assert.NotContains(t, line, "caller=")
}
