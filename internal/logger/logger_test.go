package logger

import (
	"testing"

	"github.com/go-playground/assert/v2"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{" WARN ", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.wantErr, err != nil)
	}
}

func TestNewHonoursLevel(t *testing.T) {
	log, err := New("warn")

	assert.Equal(t, nil, err)
	assert.Equal(t, false, log.Core().Enabled(zapcore.InfoLevel))
	assert.Equal(t, true, log.Core().Enabled(zapcore.WarnLevel))
}
