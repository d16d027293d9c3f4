// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"trace", log.DebugLevel},
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"bogus", log.WarnLevel},
		{"", log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestInitLoggerTo_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "")

	Debugf("hidden %d", 1)
	Warnf("unable to open directory: %s", "/tmp/x")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, " W unable to open directory: /tmp/x")
}

func TestTracef(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "trace")

	Tracef("visiting %s", "a/b")
	Debugf("plain %s", "debug")

	out := buf.String()
	assert.Contains(t, out, " T visiting a/b")
	assert.Contains(t, out, " D plain debug")

	buf.Reset()
	InitLoggerTo(&buf, "debug")
	Tracef("visiting %s", "a/b")
	assert.Empty(t, buf.String())
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "info")

	WithError(errors.New("permission denied")).Error("read failed")

	assert.Contains(t, buf.String(), " E read failed: permission denied")
}
