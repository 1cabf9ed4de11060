package mail

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulator_Send(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sender := NewSimulator(logger)

	messageID, err := sender.Send(context.Background(), "a@b.com", "Subject", "<p>body</p>")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(messageID, "sim_"))
}

func TestSimulator_Send_CancelledContext(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sender := NewSimulator(logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sender.Send(ctx, "a@b.com", "Subject", "body")

	assert.Error(t, err)
}
