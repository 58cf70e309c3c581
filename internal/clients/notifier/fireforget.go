package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

// FireAndForget adapts the webhook client to the fire-and-forget notifier
// contract: delivery failures are logged, never surfaced to the caller.
type FireAndForget struct {
	c *Client
}

func NewFireAndForget(c *Client) *FireAndForget {
	return &FireAndForget{c: c}
}

func (f *FireAndForget) SendClearanceReminder(ctx context.Context, student entity.Student, pending []string) {
	if err := f.c.SendClearanceReminder(ctx, student, pending); err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("send clearance reminder: %s", err))
	}
}

// LogOnly is the notifier used when no delivery channel is configured. The
// reminder still succeeds from the caller's point of view.
type LogOnly struct{}

func (LogOnly) SendClearanceReminder(ctx context.Context, student entity.Student, pending []string) {
	slog.InfoContext(ctx, "clearance reminder (no notifier configured)",
		"student", student.StudentID, "pending", pending)
}
