package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/basicsig-go/pkg/basicsig/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, test := range tests {
		got, err := logging.ParseLevel(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}

	_, err := logging.ParseLevel("trace")
	assert.Error(t, err)
}

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewText(&buf, slog.LevelInfo).With("command", "sign")
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "signed",
		logging.Redacted("secret"),
		logging.Public("pubkey", []byte{0x04, 0xab}))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "command=sign")
	assert.Contains(t, out, "secret=[redacted]")
	assert.Contains(t, out, "pubkey=04ab")
}

func TestDiscard(t *testing.T) {
	log := logging.Discard()
	log.Error(context.Background(), "dropped")
	assert.Equal(t, "[redacted]", logging.Placeholder())
}
