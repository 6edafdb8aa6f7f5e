package log

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_Level(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		fallback string
		want     log.Level
	}{
		{name: "default", want: log.ErrorLevel},
		{name: "fallback", fallback: "info", want: log.InfoLevel},
		{name: "env wins", env: "DEBUG", fallback: "info", want: log.DebugLevel},
		{name: "unknown", env: "chatty", want: log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvVar, tt.env)
			InitLogger(tt.fallback)

			logger, ok := log.Log.(*log.Logger)
			require.True(t, ok)
			assert.Equal(t, tt.want, logger.Level)
		})
	}
}

func TestHandler_HandleLog(t *testing.T) {
	var buf bytes.Buffer
	logger := &log.Logger{Handler: NewHandler(&buf), Level: log.DebugLevel}

	logger.WithField("path", "a.parquet").WithField("rows", 3).Info("opened")

	line := buf.String()
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} I opened`), line)
	assert.Contains(t, line, " path=a.parquet")
	assert.Contains(t, line, " rows=3\n")
}
