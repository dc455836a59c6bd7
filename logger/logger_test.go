// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	defer Level.Set(slog.LevelInfo)

	tests := map[string]struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantError bool
	}{
		"debug": {level: "debug", wantDebug: true, wantInfo: true, wantError: true},
		"info":  {level: "info", wantInfo: true, wantError: true},
		"error": {level: "error", wantError: true},
		"off":   {level: "off"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewWithHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			Level.SetByName(test.level)

			l.Debugf("debug %d", 1)
			assert.Equal(t, test.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug 1")))

			l.Infof("info %d", 2)
			assert.Equal(t, test.wantInfo, bytes.Contains(buf.Bytes(), []byte("info 2")))

			l.Error("error 3")
			assert.Equal(t, test.wantError, bytes.Contains(buf.Bytes(), []byte("error 3")))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		"debug":         {name: "debug", want: slog.LevelDebug},
		"upper case":    {name: "WARNING", want: slog.LevelWarn},
		"short":         {name: "err", want: slog.LevelError},
		"notice":        {name: "notice", want: levelNotice},
		"disabled":      {name: "none", want: levelOff},
		"unknown level": {name: "verbose", wantErr: true},
		"empty":         {name: "", wantErr: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			lvl, err := ParseLevel(test.name)

			if test.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.want, lvl)
		})
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(slog.NewTextHandler(&buf, nil)).With("component", "client")

	l.Info("hello")
	assert.Contains(t, buf.String(), "component=client")
}

func TestLogger_Nil(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Infof("nothing %s", "here")
	})
}

func TestHandlers_RedactCredentials(t *testing.T) {
	tests := map[string]struct {
		newHandler func(w io.Writer) slog.Handler
	}{
		"text":     {newHandler: newTextHandler},
		"terminal": {newHandler: newTerminalHandler},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewWithHandler(test.newHandler(&buf)).With(appAttr)

			l.sl.Info("login", "user", "monitor", "password", "s3cret", "PROXY_PASSWORD", "p4ss")

			out := buf.String()
			assert.Contains(t, out, "monitor")
			assert.Contains(t, out, "***")
			assert.Contains(t, out, appName)
			assert.NotContains(t, out, "s3cret")
			assert.NotContains(t, out, "p4ss")
		})
	}
}
