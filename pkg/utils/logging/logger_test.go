package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestLogger(t *testing.T) {
	t.Run("secret fields are redacted", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON, false)
		logger.Info("hello",
			slog.String("secret_key", "xxx"),
			slog.String("OAuthToken", "xoxb-token"),
			slog.String("normal_key", "aaa"),
		)

		gt.S(t, buf.String()).Contains("aaa").NotContains("xxx").NotContains("xoxb-token")
	})

	t.Run("level filters debug output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON, false)
		logger.Debug("hidden")
		gt.Equal(t, buf.Len(), 0)
	})
}

func TestParseFormat(t *testing.T) {
	f, err := logging.ParseFormat("json", "")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatJSON)

	f, err = logging.ParseFormat("", "xterm-256color")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatConsole)

	f, err = logging.ParseFormat("", "dumb")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatJSON)

	_, err = logging.ParseFormat("yaml", "")
	gt.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	level, err := logging.ParseLevel("WARN")
	gt.NoError(t, err)
	gt.Equal(t, level, slog.LevelWarn)

	_, err = logging.ParseLevel("trace")
	gt.Error(t, err)
}
