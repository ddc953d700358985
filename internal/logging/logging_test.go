package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{" info ", logrus.InfoLevel},
		{"ERROR", logrus.ErrorLevel},
		{"", logrus.WarnLevel},
		{"loud", logrus.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := NewWithOutput(&bytes.Buffer{}, tt.level, "text")
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "info", "json")
	log.WithField("key", "resumeData").Info("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded", entry["msg"])
	assert.Equal(t, "resumeData", entry["key"])
}

func TestTextFormatFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "warn", "text")
	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
